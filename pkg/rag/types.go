package rag

// Source is one candidate document flowing through the pipeline. Identity is
// positional: citation [n] in an answer refers to the n-th source of that
// answer's final list.
type Source struct {
	Title    string         `json:"title"`
	URL      string         `json:"url"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`

	// Embedding is set when a stored vector already exists for this source
	// (uploaded file chunks); the reranker reuses it instead of re-embedding.
	Embedding []float32 `json:"-"`
}

// FocusModeConfig describes one focus mode's pipeline. Built once at process
// start and shared read-only across sessions.
type FocusModeConfig struct {
	Name                  string
	ActiveEngines         []string // empty = search backend default set
	QueryRewritePrompt    string   // empty = no rewriting (writing-assistant modes)
	AnswerPrompt          string
	RerankEnabled         bool
	RerankThreshold       float64
	UseWebSearch          bool
	SummarizeBeforeAnswer bool

	// DirectReply marks modes whose rewrite prompt allows a conversational
	// reply outside the <question> tag; such a reply short-circuits retrieval.
	DirectReply bool

	// Sentinels are rewriter outputs meaning "no retrieval needed"; matching
	// one streams DeclineMessage instead of running retrieval.
	Sentinels      []string
	DeclineMessage string
}
