package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/pkg/llm"
	"ai-answer-engine-be/pkg/rag"
	"ai-answer-engine-be/pkg/rag/ingest"
	"ai-answer-engine-be/pkg/rag/rerank"
	"ai-answer-engine-be/pkg/rag/retriever"
	"ai-answer-engine-be/pkg/rag/similarity"
	"ai-answer-engine-be/pkg/search"
)

// fakeLLM scripts the rewrite response and the answer stream.
type fakeLLM struct {
	generateOut string
	generateErr error
	chunks      []string
	streamErr   error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.generateOut, f.generateErr
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.generateOut, f.generateErr
}

func (f *fakeLLM) ChatStream(ctx context.Context, history []llm.Message, options ...llm.Option) (<-chan llm.StreamChunk, error) {
	out := make(chan llm.StreamChunk)
	go func() {
		defer close(out)
		for _, c := range f.chunks {
			out <- llm.StreamChunk{Content: c}
		}
		if f.streamErr != nil {
			out <- llm.StreamChunk{Err: f.streamErr}
		}
	}()
	return out, nil
}

type fakeEmbedder struct {
	vectors map[string][]float32
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float32{0, 1}, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := f.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func newTestRetriever(t *testing.T, searxngURL string) *retriever.Retriever {
	t.Helper()
	ingestor := ingest.NewIngestor(500, 100, 4, logger.NewNopLogger())
	return retriever.NewRetriever(search.NewClient(searxngURL), ingestor, nil, logger.NewNopLogger())
}

func collect(t *testing.T, events <-chan Event) []Event {
	t.Helper()
	var out []Event
	for ev := range events {
		out = append(out, ev)
	}
	return out
}

func TestDirectReplyShortCircuit(t *testing.T) {
	cfg := &rag.FocusModeConfig{
		Name:               "webSearch",
		QueryRewritePrompt: "rewrite: {query}",
		AnswerPrompt:       "answer with {context}",
		DirectReply:        true,
		UseWebSearch:       true,
		RerankEnabled:      true,
	}
	chat := &fakeLLM{generateOut: "Hello! I'm doing great, thanks for asking."}
	p := New(cfg, newTestRetriever(t, "http://searxng.invalid"), rerank.NewReranker(similarity.MeasureCosine, 3, logger.NewNopLogger()), logger.NewNopLogger())

	events := collect(t, p.SearchAndAnswer(context.Background(), Request{
		Query: "Hi! How are you?",
		Chat:  chat,
	}))

	require.Len(t, events, 2)
	assert.Equal(t, EventToken, events[0].Kind)
	assert.Equal(t, "Hello! I'm doing great, thanks for asking.", events[0].Token)
	assert.Equal(t, EventEnd, events[1].Kind)
}

func TestSentinelStreamsDeclineMessage(t *testing.T) {
	cfg := &rag.FocusModeConfig{
		Name:               "webSearch",
		QueryRewritePrompt: "rewrite: {query}",
		Sentinels:          []string{"not_business_related"},
		DeclineMessage:     "Happy to help with business topics instead!",
		DirectReply:        true,
		UseWebSearch:       true,
	}
	chat := &fakeLLM{generateOut: "<question>not_business_related</question>"}
	p := New(cfg, newTestRetriever(t, "http://searxng.invalid"), rerank.NewReranker(similarity.MeasureCosine, 3, logger.NewNopLogger()), logger.NewNopLogger())

	events := collect(t, p.SearchAndAnswer(context.Background(), Request{Query: "write me a poem", Chat: chat}))

	require.Len(t, events, 2)
	assert.Equal(t, EventToken, events[0].Kind)
	assert.Equal(t, cfg.DeclineMessage, events[0].Token)
	assert.Equal(t, EventEnd, events[1].Kind)
}

func TestWebSearchRerankThreshold(t *testing.T) {
	results := []map[string]string{
		{"title": "Review", "url": "https://a.example", "content": "cybertruck review"},
		{"title": "Recipe", "url": "https://b.example", "content": "pasta recipe"},
		{"title": "Launch", "url": "https://c.example", "content": "cybertruck launch"},
		{"title": "Gardening", "url": "https://d.example", "content": "tomato plants"},
		{"title": "Weather", "url": "https://e.example", "content": "rain tomorrow"},
	}
	searxng := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"results": results})
	}))
	defer searxng.Close()

	cfg := &rag.FocusModeConfig{
		Name:               "webSearch",
		QueryRewritePrompt: "rewrite: {query}",
		AnswerPrompt:       "answer with {context}",
		RerankEnabled:      true,
		RerankThreshold:    0.3,
		UseWebSearch:       true,
	}
	chat := &fakeLLM{
		generateOut: "<question>Tesla Cybertruck reception</question>",
		chunks:      []string{"The Cybertruck ", "was received well [1][2]."},
	}
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"Tesla Cybertruck reception": {1, 0},
		"cybertruck review":          {0.9, 0.2},
		"cybertruck launch":          {0.8, 0.3},
		// everything else falls back to the orthogonal default vector
	}}

	p := New(cfg, newTestRetriever(t, searxng.URL), rerank.NewReranker(similarity.MeasureCosine, 3, logger.NewNopLogger()), logger.NewNopLogger())
	events := collect(t, p.SearchAndAnswer(context.Background(), Request{
		Query:    "What do people think of the Cybertruck?",
		Chat:     chat,
		Embedder: embedder,
	}))

	require.GreaterOrEqual(t, len(events), 4)
	assert.Equal(t, EventSources, events[0].Kind)
	require.Len(t, events[0].Sources, 2)
	for _, s := range events[0].Sources {
		assert.Contains(t, s.Content, "cybertruck")
	}

	var text string
	for _, ev := range events[1 : len(events)-1] {
		require.Equal(t, EventToken, ev.Kind)
		text += ev.Token
	}
	assert.Equal(t, "The Cybertruck was received well [1][2].", text)
	assert.Equal(t, EventEnd, events[len(events)-1].Kind)
}

func TestExplicitLinksPartialFailure(t *testing.T) {
	docs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok1":
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html><head><title>One</title></head><body><p>first document body</p></body></html>"))
		case "/ok2":
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte("second document body"))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer docs.Close()

	cfg := &rag.FocusModeConfig{
		Name:               "webSearch",
		QueryRewritePrompt: "rewrite: {query}",
		AnswerPrompt:       "answer with {context}",
		UseWebSearch:       true,
	}
	chat := &fakeLLM{
		generateOut: "<question>summarize</question>\n<links>\n" +
			docs.URL + "/ok1\n" + docs.URL + "/ok2\n" + docs.URL + "/bad\n</links>",
		chunks: []string{"Both documents agree."},
	}

	p := New(cfg, newTestRetriever(t, "http://searxng.invalid"), rerank.NewReranker(similarity.MeasureCosine, 3, logger.NewNopLogger()), logger.NewNopLogger())
	events := collect(t, p.SearchAndAnswer(context.Background(), Request{
		Query:    "summarize these",
		Chat:     chat,
		Embedder: &fakeEmbedder{},
	}))

	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, EventEnd, last.Kind)

	require.Equal(t, EventSources, events[0].Kind)
	for _, s := range events[0].Sources {
		assert.NotContains(t, s.URL, "/bad")
	}
}

func TestModelFailureEmitsChainError(t *testing.T) {
	cfg := &rag.FocusModeConfig{
		Name:               "webSearch",
		QueryRewritePrompt: "rewrite: {query}",
		UseWebSearch:       true,
	}
	chat := &fakeLLM{generateErr: errors.New("connection refused")}

	p := New(cfg, newTestRetriever(t, "http://searxng.invalid"), rerank.NewReranker(similarity.MeasureCosine, 3, logger.NewNopLogger()), logger.NewNopLogger())
	events := collect(t, p.SearchAndAnswer(context.Background(), Request{Query: "anything", Chat: chat}))

	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Kind)
	assert.Equal(t, CodeChainError, events[0].Code)
}

func TestCancellationStopsStreamWithoutTerminalEvent(t *testing.T) {
	cfg := &rag.FocusModeConfig{
		Name:         "writingAssistant",
		AnswerPrompt: "answer",
	}
	chat := &fakeLLM{chunks: []string{"a", "b", "c", "d"}}

	ctx, cancel := context.WithCancel(context.Background())
	p := New(cfg, newTestRetriever(t, "http://searxng.invalid"), rerank.NewReranker(similarity.MeasureCosine, 3, logger.NewNopLogger()), logger.NewNopLogger())
	events := p.SearchAndAnswer(ctx, Request{Query: "write", Chat: chat})

	// take one token then cancel; the channel must close without end/error
	first := <-events
	assert.Equal(t, EventToken, first.Kind)
	cancel()

	sawTerminal := false
	for ev := range events {
		if ev.Kind == EventEnd || ev.Kind == EventError {
			sawTerminal = true
		}
	}
	assert.False(t, sawTerminal)
}
