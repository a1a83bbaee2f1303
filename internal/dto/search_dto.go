package dto

import "ai-answer-engine-be/pkg/rag"

// ModelSelection picks a chat or embedding model for one request or
// connection. Provider "custom_openai" requires the base URL, the key is
// optional for unauthenticated endpoints.
type ModelSelection struct {
	Provider         string `json:"provider"`
	Model            string `json:"model"`
	CustomOpenAIBase string `json:"customOpenAIBaseURL,omitempty"`
	CustomOpenAIKey  string `json:"customOpenAIKey,omitempty"`
}

type SearchRequest struct {
	FocusMode        string          `json:"focusMode" validate:"required"`
	OptimizationMode string          `json:"optimizationMode"`
	Query            string          `json:"query" validate:"required"`
	History          [][2]string     `json:"history"`
	ChatModel        *ModelSelection `json:"chatModel,omitempty"`
	EmbeddingModel   *ModelSelection `json:"embeddingModel,omitempty"`
}

type SearchResponse struct {
	Message string       `json:"message"`
	Sources []rag.Source `json:"sources"`
}
