package entity

import (
	"time"

	"github.com/google/uuid"

	"ai-answer-engine-be/pkg/rag"
)

// MessageMetadata carries the structured extras persisted alongside a
// message: creation time and, for assistant turns, the cited sources.
type MessageMetadata struct {
	CreatedAt time.Time    `json:"createdAt"`
	Sources   []rag.Source `json:"sources,omitempty"`
}

type ChatMessage struct {
	Id        uuid.UUID
	MessageId string
	ChatId    string
	Role      string
	Content   string
	Seq       int64
	Metadata  MessageMetadata
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
