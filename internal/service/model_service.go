package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ai-answer-engine-be/internal/config"
	"ai-answer-engine-be/internal/dto"
	"ai-answer-engine-be/pkg/embedding"
	"ai-answer-engine-be/pkg/llm"
	"ai-answer-engine-be/pkg/llm/factory"
)

// ErrInvalidModelSelection marks a selection that names no usable provider.
// Callers translate it into their own wire error (400 or INVALID_MODEL_SELECTED).
var ErrInvalidModelSelection = errors.New("invalid model selected")

type IModelService interface {
	Catalog(ctx context.Context) (*dto.ModelCatalogResponse, error)
	RuntimeConfig(focusModes []string) *dto.RuntimeConfigResponse
	ResolveChat(selection *dto.ModelSelection) (llm.LLMProvider, error)
	ResolveEmbedding(selection *dto.ModelSelection) (embedding.EmbeddingProvider, error)
}

type modelService struct {
	cfg    *config.Config
	client *http.Client
}

func NewModelService(cfg *config.Config) IModelService {
	return &modelService{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *modelService) ResolveChat(selection *dto.ModelSelection) (llm.LLMProvider, error) {
	provider, model := s.cfg.Ai.ChatProvider, s.cfg.Ai.ChatModel
	baseURL, apiKey := s.cfg.Ai.ChatBaseURL, s.cfg.Ai.ChatAPIKey

	if selection != nil {
		provider, model = selection.Provider, selection.Model
		if provider == "custom_openai" {
			if selection.CustomOpenAIBase == "" {
				return nil, ErrInvalidModelSelection
			}
			baseURL, apiKey = selection.CustomOpenAIBase, selection.CustomOpenAIKey
		}
	}
	if provider == "" || model == "" {
		return nil, ErrInvalidModelSelection
	}

	p, err := factory.NewLLMProvider(provider, model, baseURL, apiKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModelSelection, err)
	}
	return p, nil
}

func (s *modelService) ResolveEmbedding(selection *dto.ModelSelection) (embedding.EmbeddingProvider, error) {
	provider, model := s.cfg.Ai.EmbeddingProvider, s.cfg.Ai.EmbeddingModel
	baseURL, apiKey := s.cfg.Ai.EmbeddingBaseURL, s.cfg.Ai.EmbeddingAPIKey

	if selection != nil {
		provider, model = selection.Provider, selection.Model
		if provider == "custom_openai" {
			if selection.CustomOpenAIBase == "" {
				return nil, ErrInvalidModelSelection
			}
			baseURL, apiKey = selection.CustomOpenAIBase, selection.CustomOpenAIKey
		}
	}
	if provider == "" || model == "" {
		return nil, ErrInvalidModelSelection
	}

	p, err := embedding.NewProvider(provider, model, baseURL, apiKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModelSelection, err)
	}
	return p, nil
}

// Catalog lists the models clients can select. Ollama models come from the
// running daemon's tag list, the configured openai-compatible endpoint is
// reported as a single entry.
func (s *modelService) Catalog(ctx context.Context) (*dto.ModelCatalogResponse, error) {
	res := &dto.ModelCatalogResponse{
		ChatModelProviders:      map[string][]dto.ModelInfo{},
		EmbeddingModelProviders: map[string][]dto.ModelInfo{},
	}

	if s.cfg.Ai.ChatProvider == "ollama" || s.cfg.Ai.EmbeddingProvider == "ollama" {
		models, err := s.listOllamaModels(ctx, s.cfg.Ai.ChatBaseURL)
		if err == nil {
			res.ChatModelProviders["ollama"] = models
			res.EmbeddingModelProviders["ollama"] = models
		}
	}

	if s.cfg.Ai.ChatProvider == "openai" {
		res.ChatModelProviders["openai"] = []dto.ModelInfo{
			{Name: s.cfg.Ai.ChatModel, DisplayName: s.cfg.Ai.ChatModel},
		}
	}
	if s.cfg.Ai.EmbeddingProvider == "openai" {
		res.EmbeddingModelProviders["openai"] = []dto.ModelInfo{
			{Name: s.cfg.Ai.EmbeddingModel, DisplayName: s.cfg.Ai.EmbeddingModel},
		}
	}

	// custom_openai is always offered, the client supplies endpoint + model
	res.ChatModelProviders["custom_openai"] = []dto.ModelInfo{}

	return res, nil
}

func (s *modelService) RuntimeConfig(focusModes []string) *dto.RuntimeConfigResponse {
	return &dto.RuntimeConfigResponse{
		SimilarityMeasure: s.cfg.Search.SimilarityMeasure,
		ChatProvider:      s.cfg.Ai.ChatProvider,
		ChatModel:         s.cfg.Ai.ChatModel,
		EmbeddingProvider: s.cfg.Ai.EmbeddingProvider,
		EmbeddingModel:    s.cfg.Ai.EmbeddingModel,
		SearxNGURL:        s.cfg.Search.SearxNGURL,
		FocusModes:        focusModes,
	}
}

type ollamaTagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func (s *modelService) listOllamaModels(ctx context.Context, baseURL string) ([]dto.ModelInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama tags returned status %d", resp.StatusCode)
	}

	var tags ollamaTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, err
	}

	models := make([]dto.ModelInfo, 0, len(tags.Models))
	for _, m := range tags.Models {
		models = append(models, dto.ModelInfo{Name: m.Name, DisplayName: m.Name})
	}
	return models, nil
}
