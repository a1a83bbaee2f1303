package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-answer-engine-be/internal/config"
	"ai-answer-engine-be/internal/dto"
)

func testConfig() *config.Config {
	return &config.Config{
		Ai: config.AIConfig{
			ChatProvider:      "ollama",
			ChatModel:         "llama3.1:latest",
			ChatBaseURL:       "http://localhost:11434",
			EmbeddingProvider: "ollama",
			EmbeddingModel:    "nomic-embed-text",
			EmbeddingBaseURL:  "http://localhost:11434",
		},
	}
}

func TestResolveChatDefaults(t *testing.T) {
	svc := NewModelService(testConfig())

	provider, err := svc.ResolveChat(nil)

	require.NoError(t, err)
	assert.NotNil(t, provider)
}

func TestResolveChatNoDefaultConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Ai.ChatProvider = ""
	svc := NewModelService(cfg)

	_, err := svc.ResolveChat(nil)

	assert.ErrorIs(t, err, ErrInvalidModelSelection)
}

func TestResolveChatCustomOpenAIRequiresBaseURL(t *testing.T) {
	svc := NewModelService(testConfig())

	_, err := svc.ResolveChat(&dto.ModelSelection{
		Provider: "custom_openai",
		Model:    "gpt-4o-mini",
	})

	assert.ErrorIs(t, err, ErrInvalidModelSelection)
}

func TestResolveChatCustomOpenAI(t *testing.T) {
	svc := NewModelService(testConfig())

	provider, err := svc.ResolveChat(&dto.ModelSelection{
		Provider:         "custom_openai",
		Model:            "gpt-4o-mini",
		CustomOpenAIBase: "https://api.example.com/v1",
		CustomOpenAIKey:  "sk-test",
	})

	require.NoError(t, err)
	assert.NotNil(t, provider)
}

func TestResolveEmbeddingUnknownProvider(t *testing.T) {
	svc := NewModelService(testConfig())

	_, err := svc.ResolveEmbedding(&dto.ModelSelection{
		Provider: "carrier-pigeon",
		Model:    "fast",
	})

	assert.ErrorIs(t, err, ErrInvalidModelSelection)
}

func TestHistoryToMessages(t *testing.T) {
	messages := HistoryToMessages([][2]string{
		{"human", "hello"},
		{"assistant", "hi there"},
	})

	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[0].Role)
	assert.Equal(t, "hello", messages[0].Content)
	assert.Equal(t, "assistant", messages[1].Role)
}
