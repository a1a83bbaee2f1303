package contract

import (
	"context"

	"ai-answer-engine-be/internal/entity"
	"ai-answer-engine-be/internal/repository/specification"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	DeleteByChatId(ctx context.Context, chatId string) error
	// DeleteAfterSeq removes every message of a chat that was inserted after
	// the given sequence number. Used when a client resends an existing
	// messageId to edit and regenerate from that point.
	DeleteAfterSeq(ctx context.Context, chatId string, seq int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
}
