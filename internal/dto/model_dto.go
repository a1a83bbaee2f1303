package dto

type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type ModelCatalogResponse struct {
	ChatModelProviders      map[string][]ModelInfo `json:"chatModelProviders"`
	EmbeddingModelProviders map[string][]ModelInfo `json:"embeddingModelProviders"`
}

type RuntimeConfigResponse struct {
	SimilarityMeasure string `json:"similarityMeasure"`
	ChatProvider      string `json:"chatProvider"`
	ChatModel         string `json:"chatModel"`
	EmbeddingProvider string `json:"embeddingProvider"`
	EmbeddingModel    string `json:"embeddingModel"`
	SearxNGURL        string   `json:"searxngURL"`
	FocusModes        []string `json:"focusModes"`
}
