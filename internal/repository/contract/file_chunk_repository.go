package contract

import (
	"context"

	"ai-answer-engine-be/internal/entity"
	"ai-answer-engine-be/internal/repository/specification"
)

type FileChunkRepository interface {
	CreateBatch(ctx context.Context, chunks []*entity.FileChunk) error
	DeleteByFileId(ctx context.Context, fileId string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FileChunk, error)
}
