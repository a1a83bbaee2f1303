package mapper

import (
	"encoding/json"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ai-answer-engine-be/internal/entity"
	"ai-answer-engine-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Chat Mappers

func (m *ChatMapper) ChatToEntity(c *model.Chat) *entity.Chat {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	var files []entity.FileRef
	if len(c.Files) > 0 {
		// malformed stored json leaves files empty rather than failing the read
		_ = json.Unmarshal(c.Files, &files)
	}

	return &entity.Chat{
		Id:        c.Id,
		Title:     c.Title,
		FocusMode: c.FocusMode,
		Files:     files,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: c.DeletedAt.Valid,
	}
}

func (m *ChatMapper) ChatToModel(c *entity.Chat) *model.Chat {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	} else if c.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	files := c.Files
	if files == nil {
		files = []entity.FileRef{}
	}
	filesJSON, _ := json.Marshal(files)

	return &model.Chat{
		Id:        c.Id,
		Title:     c.Title,
		FocusMode: c.FocusMode,
		Files:     datatypes.JSON(filesJSON),
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	var deletedAt *time.Time
	if msg.DeletedAt.Valid {
		t := msg.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !msg.UpdatedAt.IsZero() {
		t := msg.UpdatedAt
		updatedAt = &t
	}

	var metadata entity.MessageMetadata
	if len(msg.Metadata) > 0 {
		_ = json.Unmarshal(msg.Metadata, &metadata)
	}

	return &entity.ChatMessage{
		Id:        msg.Id,
		MessageId: msg.MessageId,
		ChatId:    msg.ChatId,
		Role:      msg.Role,
		Content:   msg.Content,
		Seq:       msg.Seq,
		Metadata:  metadata,
		CreatedAt: msg.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: msg.DeletedAt.Valid,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if msg.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *msg.DeletedAt, Valid: true}
	} else if msg.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if msg.UpdatedAt != nil {
		updatedAt = *msg.UpdatedAt
	}

	metadataJSON, _ := json.Marshal(msg.Metadata)

	return &model.ChatMessage{
		Id:        msg.Id,
		MessageId: msg.MessageId,
		ChatId:    msg.ChatId,
		Role:      msg.Role,
		Content:   msg.Content,
		Seq:       msg.Seq,
		Metadata:  datatypes.JSON(metadataJSON),
		CreatedAt: msg.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

// File Chunk Mappers

func (m *ChatMapper) FileChunkToEntity(c *model.FileChunk) *entity.FileChunk {
	if c == nil {
		return nil
	}
	return &entity.FileChunk{
		Id:         c.Id,
		FileId:     c.FileId,
		FileName:   c.FileName,
		ChunkIndex: c.ChunkIndex,
		Content:    c.Content,
		Embedding:  c.Embedding.Slice(),
		CreatedAt:  c.CreatedAt,
	}
}

func (m *ChatMapper) FileChunkToModel(c *entity.FileChunk) *model.FileChunk {
	if c == nil {
		return nil
	}
	return &model.FileChunk{
		Id:         c.Id,
		FileId:     c.FileId,
		FileName:   c.FileName,
		ChunkIndex: c.ChunkIndex,
		Content:    c.Content,
		Embedding:  pgvector.NewVector(c.Embedding),
		CreatedAt:  c.CreatedAt,
	}
}
