package service

import (
	"context"

	"ai-answer-engine-be/internal/repository/contract"
	"ai-answer-engine-be/internal/repository/specification"
	"ai-answer-engine-be/pkg/rag"
)

// fileChunkLoader adapts the file chunk repository to the retriever's
// loader interface. Stored embeddings ride along on the Source so the
// reranker can skip re-embedding uploaded documents.
type fileChunkLoader struct {
	chunks contract.FileChunkRepository
}

func NewFileChunkLoader(chunks contract.FileChunkRepository) *fileChunkLoader {
	return &fileChunkLoader{chunks: chunks}
}

func (l *fileChunkLoader) LoadChunks(ctx context.Context, fileIds []string) ([]rag.Source, error) {
	if len(fileIds) == 0 {
		return nil, nil
	}

	chunks, err := l.chunks.FindAll(ctx,
		specification.ByFileIDs{FileIDs: fileIds},
		specification.OrderBy{Field: "file_id"},
		specification.OrderBy{Field: "chunk_index"},
	)
	if err != nil {
		return nil, err
	}

	sources := make([]rag.Source, 0, len(chunks))
	for _, c := range chunks {
		sources = append(sources, rag.Source{
			Title:   c.FileName,
			URL:     "file",
			Content: c.Content,
			Metadata: map[string]interface{}{
				"fileId":     c.FileId,
				"chunkIndex": c.ChunkIndex,
			},
			Embedding: c.Embedding,
		})
	}
	return sources, nil
}
