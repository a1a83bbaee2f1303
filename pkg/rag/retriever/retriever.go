package retriever

import (
	"context"
	"fmt"

	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/pkg/rag"
	"ai-answer-engine-be/pkg/rag/ingest"
	"ai-answer-engine-be/pkg/search"
)

// FileChunkLoader resolves uploaded-file ids into their stored text chunks.
// Chunks come back with their stored embedding vectors attached.
type FileChunkLoader interface {
	LoadChunks(ctx context.Context, fileIds []string) ([]rag.Source, error)
}

// Retriever gathers candidate sources for a rewritten query: explicit links
// and uploaded files take precedence, then web search, then nothing (modes
// that answer from conversation history alone).
type Retriever struct {
	search   *search.Client
	ingestor *ingest.Ingestor
	files    FileChunkLoader
	logger   logger.ILogger
}

func NewRetriever(searchClient *search.Client, ingestor *ingest.Ingestor, files FileChunkLoader, log logger.ILogger) *Retriever {
	return &Retriever{
		search:   searchClient,
		ingestor: ingestor,
		files:    files,
		logger:   log,
	}
}

// Retrieve returns candidate sources. Per-item failures (one link, one file)
// are logged and dropped; only a web-search backend failure is an error.
func (r *Retriever) Retrieve(
	ctx context.Context,
	cfg *rag.FocusModeConfig,
	query string,
	links []string,
	fileIds []string,
) ([]rag.Source, error) {
	// 1. Explicit material wins over web search
	if len(links) > 0 || len(fileIds) > 0 {
		var sources []rag.Source

		if len(fileIds) > 0 && r.files != nil {
			fileSources, err := r.files.LoadChunks(ctx, fileIds)
			if err != nil {
				r.logger.Warn("retriever", "failed to load file chunks", map[string]interface{}{
					"error": err.Error(),
				})
			} else {
				sources = append(sources, fileSources...)
			}
		}

		if len(links) > 0 {
			sources = append(sources, r.ingestor.FromLinks(ctx, links)...)
		}
		return sources, nil
	}

	// 2. Web search
	if cfg.UseWebSearch {
		results, _, err := r.search.Search(ctx, query, &search.Options{
			Engines:  cfg.ActiveEngines,
			Language: "en",
		})
		if err != nil {
			return nil, fmt.Errorf("web search: %w", err)
		}

		sources := make([]rag.Source, 0, len(results))
		for _, res := range results {
			if res.Content == "" && res.Title == "" {
				continue
			}
			sources = append(sources, rag.Source{
				Title:   res.Title,
				URL:     res.URL,
				Content: res.Content,
				Metadata: map[string]any{
					"url":   res.URL,
					"title": res.Title,
				},
			})
		}
		return sources, nil
	}

	// 3. Writing-assistant style modes answer from history alone
	return []rag.Source{}, nil
}
