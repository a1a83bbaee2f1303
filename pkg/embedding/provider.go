package embedding

import "context"

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	// Embed converts one text into a fixed-size vector
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch converts many texts; result[i] corresponds to texts[i].
	// Providers without a batch endpoint loop over Embed.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
