package entity

import (
	"time"

	"github.com/google/uuid"
)

type FileChunk struct {
	Id         uuid.UUID
	FileId     string
	FileName   string
	ChunkIndex int
	Content    string
	Embedding  []float32
	CreatedAt  time.Time
}
