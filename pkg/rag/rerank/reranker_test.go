package rerank

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/pkg/rag"
	"ai-answer-engine-be/pkg/rag/similarity"
)

// fakeEmbedder maps known texts to fixed vectors and counts calls so tests
// can assert stored embeddings are reused.
type fakeEmbedder struct {
	vectors map[string][]float32
	calls   int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	return f.vectors[text], nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = f.vectors[t]
	}
	return out, nil
}

func sourcesNamed(contents ...string) []rag.Source {
	out := make([]rag.Source, len(contents))
	for i, c := range contents {
		out[i] = rag.Source{Title: c, URL: "https://example.com/" + c, Content: c}
	}
	return out
}

func TestRerankDisabledIsIdentity(t *testing.T) {
	r := NewReranker(similarity.MeasureCosine, 3, logger.NewNopLogger())
	cfg := &rag.FocusModeConfig{RerankEnabled: false}
	in := sourcesNamed("a", "b", "c")

	out, err := r.Rerank(context.Background(), &fakeEmbedder{}, cfg, "query", in, ModeBalanced)

	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRerankThresholdFilter(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"query":    {1, 0},
		"relevant": {1, 0},     // cosine 1.0
		"near":     {0.8, 0.6}, // cosine 0.8
		"far":      {0, 1},     // cosine 0.0
	}}
	r := NewReranker(similarity.MeasureCosine, 3, logger.NewNopLogger())
	cfg := &rag.FocusModeConfig{RerankEnabled: true, RerankThreshold: 0.3}

	out, err := r.Rerank(context.Background(), embedder, cfg, "query",
		sourcesNamed("far", "near", "relevant"), ModeBalanced)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "relevant", out[0].Content)
	assert.Equal(t, "near", out[1].Content)
}

func TestRerankTopKFallbackWhenNothingClearsThreshold(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"query": {1, 0},
		"a":     {0.2, 0.98},
		"b":     {0.1, 0.99},
		"c":     {0.05, 0.999},
		"d":     {0, 1},
	}}
	r := NewReranker(similarity.MeasureCosine, 2, logger.NewNopLogger())
	cfg := &rag.FocusModeConfig{RerankEnabled: true, RerankThreshold: 0.9}

	out, err := r.Rerank(context.Background(), embedder, cfg, "query",
		sourcesNamed("d", "c", "b", "a"), ModeBalanced)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Content)
	assert.Equal(t, "b", out[1].Content)
}

func TestRerankReusesStoredEmbeddings(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"query": {1, 0},
	}}
	r := NewReranker(similarity.MeasureCosine, 3, logger.NewNopLogger())
	cfg := &rag.FocusModeConfig{RerankEnabled: true, RerankThreshold: 0.3}

	in := []rag.Source{
		{Title: "stored", Content: "stored chunk", Embedding: []float32{1, 0}},
	}

	out, err := r.Rerank(context.Background(), embedder, cfg, "query", in, ModeBalanced)

	require.NoError(t, err)
	require.Len(t, out, 1)
	// one call for the query, none for the source
	assert.Equal(t, 1, embedder.calls)
}

func TestRerankSpeedModeSkipsEmbedding(t *testing.T) {
	embedder := &fakeEmbedder{}
	r := NewReranker(similarity.MeasureCosine, 3, logger.NewNopLogger())
	cfg := &rag.FocusModeConfig{RerankEnabled: true, RerankThreshold: 0}
	in := sourcesNamed("a", "b")

	out, err := r.Rerank(context.Background(), embedder, cfg, "query", in, ModeSpeed)

	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, 0, embedder.calls)
}
