package service

import (
	"context"
	"errors"
	"strings"

	"ai-answer-engine-be/internal/dto"
	"ai-answer-engine-be/pkg/llm"
	"ai-answer-engine-be/pkg/rag/focus"
	"ai-answer-engine-be/pkg/rag/pipeline"
)

var ErrInvalidFocusMode = errors.New("invalid focus mode")

type ISearchService interface {
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
}

type searchService struct {
	registry *focus.Registry
	models   IModelService
}

func NewSearchService(registry *focus.Registry, models IModelService) ISearchService {
	return &searchService{
		registry: registry,
		models:   models,
	}
}

// Search runs one pipeline execution to completion and returns the
// accumulated answer plus its source list.
func (s *searchService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	pipe, ok := s.registry.Get(req.FocusMode)
	if !ok {
		return nil, ErrInvalidFocusMode
	}

	chatModel, err := s.models.ResolveChat(req.ChatModel)
	if err != nil {
		return nil, err
	}
	embedder, err := s.models.ResolveEmbedding(req.EmbeddingModel)
	if err != nil {
		return nil, err
	}

	events := pipe.SearchAndAnswer(ctx, pipeline.Request{
		Query:            req.Query,
		History:          HistoryToMessages(req.History),
		Chat:             chatModel,
		Embedder:         embedder,
		OptimizationMode: req.OptimizationMode,
	})

	var answer strings.Builder
	res := &dto.SearchResponse{}
	for ev := range events {
		switch ev.Kind {
		case pipeline.EventToken:
			answer.WriteString(ev.Token)
		case pipeline.EventSources:
			res.Sources = ev.Sources
		case pipeline.EventError:
			return nil, errors.New(ev.Message)
		}
	}

	res.Message = answer.String()
	return res, nil
}

// HistoryToMessages converts the wire [[role, content], ...] history shape
// into model messages, normalizing the "human" role.
func HistoryToMessages(history [][2]string) []llm.Message {
	messages := make([]llm.Message, 0, len(history))
	for _, turn := range history {
		role := turn[0]
		if role == "human" {
			role = "user"
		}
		messages = append(messages, llm.Message{Role: role, Content: turn[1]})
	}
	return messages
}
