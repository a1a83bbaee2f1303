package dto

import (
	"time"

	"ai-answer-engine-be/internal/entity"
	"ai-answer-engine-be/pkg/rag"
)

type ChatSummary struct {
	Id        string           `json:"id"`
	Title     string           `json:"title"`
	FocusMode string           `json:"focusMode"`
	Files     []entity.FileRef `json:"files"`
	CreatedAt time.Time        `json:"createdAt"`
}

type ChatMessageResponse struct {
	MessageId string       `json:"messageId"`
	ChatId    string       `json:"chatId"`
	Role      string       `json:"role"`
	Content   string       `json:"content"`
	Sources   []rag.Source `json:"sources,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

type ShowChatResponse struct {
	Chat     *ChatSummary          `json:"chat"`
	Messages []ChatMessageResponse `json:"messages"`
}
