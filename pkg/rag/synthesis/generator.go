package synthesis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-answer-engine-be/pkg/llm"
	"ai-answer-engine-be/pkg/rag"
	"ai-answer-engine-be/pkg/rag/prompt"
)

// Generator streams the final cited answer from the chat model.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Stream renders the mode's answer prompt with the ranked sources as an
// indexed context block (index = citation number) and starts a streaming
// completion. Chunks are forwarded verbatim in model output order.
func (g *Generator) Stream(
	ctx context.Context,
	chat llm.LLMProvider,
	cfg *rag.FocusModeConfig,
	query string,
	history []llm.Message,
	sources []rag.Source,
	now time.Time,
) (<-chan llm.StreamChunk, error) {
	system := prompt.Render(cfg.AnswerPrompt, map[string]string{
		"context": BuildContext(sources),
		"date":    now.UTC().Format(time.RFC3339),
	})

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: system})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: query})

	stream, err := chat.ChatStream(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("answer generation: %w", err)
	}
	return stream, nil
}

// BuildContext formats sources as a numbered block; the number is the
// citation index the model is instructed to reference as [n].
func BuildContext(sources []rag.Source) string {
	if len(sources) == 0 {
		return ""
	}
	var b strings.Builder
	for i, s := range sources {
		title := s.Title
		if title == "" {
			title = s.URL
		}
		fmt.Fprintf(&b, "%d. %s\n%s\n\n", i+1, title, s.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}
