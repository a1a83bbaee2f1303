package rerank

import (
	"context"
	"fmt"
	"sort"

	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/pkg/embedding"
	"ai-answer-engine-be/pkg/rag"
	"ai-answer-engine-be/pkg/rag/similarity"
)

// OptimizationMode hints how much effort reranking spends.
const (
	ModeSpeed    = "speed"
	ModeBalanced = "balanced"
	ModeQuality  = "quality"
)

// Reranker orders candidate sources by embedding similarity to the query and
// drops those below the mode's threshold.
type Reranker struct {
	measure      similarity.Measure
	topKFallback int
	logger       logger.ILogger
}

func NewReranker(measure similarity.Measure, topKFallback int, log logger.ILogger) *Reranker {
	if topKFallback <= 0 {
		topKFallback = 3
	}
	return &Reranker{
		measure:      measure,
		topKFallback: topKFallback,
		logger:       log,
	}
}

type scored struct {
	source rag.Source
	score  float64
}

// Rerank returns the sources ranked by relevance. With reranking disabled
// for the mode the input is returned untouched (search-engine order is
// trusted). An empty above-threshold set falls back to the top-K by raw
// score so the answer prompt never sees an empty context for a query that
// did produce candidates.
func (r *Reranker) Rerank(
	ctx context.Context,
	embedder embedding.EmbeddingProvider,
	cfg *rag.FocusModeConfig,
	query string,
	sources []rag.Source,
	optimizationMode string,
) ([]rag.Source, error) {
	if !cfg.RerankEnabled || len(sources) == 0 {
		return sources, nil
	}
	// Speed mode skips the embedding round-trips when the threshold would
	// not filter anything anyway.
	if optimizationMode == ModeSpeed && cfg.RerankThreshold <= 0 {
		return sources, nil
	}

	queryVector, err := embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	vectors, err := r.sourceVectors(ctx, embedder, sources)
	if err != nil {
		return nil, err
	}

	ranked := make([]scored, len(sources))
	for i := range sources {
		ranked[i] = scored{
			source: sources[i],
			score:  similarity.Score(r.measure, queryVector, vectors[i]),
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	var kept []rag.Source
	for _, s := range ranked {
		if s.score >= cfg.RerankThreshold {
			kept = append(kept, s.source)
		}
	}

	if len(kept) == 0 {
		// Nothing cleared the threshold: keep the best K anyway.
		k := r.topKFallback
		if k > len(ranked) {
			k = len(ranked)
		}
		r.logger.Debug("reranker", "no source above threshold, falling back to top-k", map[string]interface{}{
			"threshold": cfg.RerankThreshold,
			"k":         k,
		})
		for _, s := range ranked[:k] {
			kept = append(kept, s.source)
		}
	}

	return kept, nil
}

// sourceVectors embeds source contents, reusing stored vectors where present
// (uploaded file chunks are embedded at upload time).
func (r *Reranker) sourceVectors(ctx context.Context, embedder embedding.EmbeddingProvider, sources []rag.Source) ([][]float32, error) {
	vectors := make([][]float32, len(sources))

	var missing []string
	var missingIdx []int
	for i, s := range sources {
		if len(s.Embedding) > 0 {
			vectors[i] = s.Embedding
			continue
		}
		missing = append(missing, s.Content)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) > 0 {
		embedded, err := embedder.EmbedBatch(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("embed sources: %w", err)
		}
		for j, idx := range missingIdx {
			vectors[idx] = embedded[j]
		}
	}
	return vectors, nil
}
