package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/pkg/embedding"
	"ai-answer-engine-be/pkg/llm"
	"ai-answer-engine-be/pkg/rag"
	"ai-answer-engine-be/pkg/rag/prompt"
	"ai-answer-engine-be/pkg/rag/rerank"
	"ai-answer-engine-be/pkg/rag/retriever"
	"ai-answer-engine-be/pkg/rag/rewriter"
	"ai-answer-engine-be/pkg/rag/synthesis"

	"golang.org/x/sync/errgroup"
)

// Pipeline runs the search-and-answer flow for one focus mode:
// rewrite → retrieve → rerank → synthesize, emitting events on a channel.
// One Pipeline instance is shared read-only across sessions; per-run state
// lives on the stack of SearchAndAnswer.
type Pipeline struct {
	Config *rag.FocusModeConfig

	rewriter  *rewriter.Rewriter
	retriever *retriever.Retriever
	reranker  *rerank.Reranker
	generator *synthesis.Generator
	logger    logger.ILogger

	summarizeConcurrency int
}

func New(
	cfg *rag.FocusModeConfig,
	ret *retriever.Retriever,
	rr *rerank.Reranker,
	log logger.ILogger,
) *Pipeline {
	return &Pipeline{
		Config:               cfg,
		rewriter:             rewriter.NewRewriter(),
		retriever:            ret,
		reranker:             rr,
		generator:            synthesis.NewGenerator(),
		logger:               log,
		summarizeConcurrency: 4,
	}
}

// Request carries everything one run needs. Chat and Embedder are resolved
// per connection and passed in rather than owned by the pipeline.
type Request struct {
	Query            string
	History          []llm.Message
	Chat             llm.LLMProvider
	Embedder         embedding.EmbeddingProvider
	OptimizationMode string
	FileIds          []string
}

// SearchAndAnswer starts a run and returns its event channel. The channel is
// closed after the terminal event; cancelling ctx stops the run without a
// terminal event.
func (p *Pipeline) SearchAndAnswer(ctx context.Context, req Request) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		p.run(ctx, req, out)
	}()
	return out
}

func (p *Pipeline) run(ctx context.Context, req Request, out chan<- Event) {
	// Phase 1: query rewriting
	rewritten, err := p.rewriter.Rewrite(ctx, req.Chat, p.Config, req.Query, req.History)
	if err != nil {
		p.logger.Error("pipeline", "query rewrite failed", map[string]interface{}{
			"focusMode": p.Config.Name,
			"error":     err.Error(),
		})
		p.emit(ctx, out, errorEvent(CodeChainError, "Failed to rewrite the query"))
		return
	}

	switch rewritten.Kind {
	case rewriter.KindShortCircuit:
		// Conversational reply, no retrieval
		if p.emit(ctx, out, tokenEvent(rewritten.Answer)) {
			p.emit(ctx, out, endEvent())
		}
		return
	case rewriter.KindSkip:
		p.logger.Debug("pipeline", "rewriter skipped retrieval", map[string]interface{}{
			"focusMode": p.Config.Name,
			"reason":    rewritten.Reason,
		})
		if p.emit(ctx, out, tokenEvent(p.Config.DeclineMessage)) {
			p.emit(ctx, out, endEvent())
		}
		return
	}

	// Phase 2: retrieval
	sources, err := p.retriever.Retrieve(ctx, p.Config, rewritten.Query, rewritten.Links, req.FileIds)
	if err != nil {
		p.logger.Error("pipeline", "retrieval failed", map[string]interface{}{
			"focusMode": p.Config.Name,
			"error":     err.Error(),
		})
		p.emit(ctx, out, errorEvent(CodeChainError, "Failed to retrieve sources"))
		return
	}

	if p.Config.SummarizeBeforeAnswer && len(rewritten.Links) > 0 {
		sources = p.summarizeLinkSources(ctx, req.Chat, rewritten.Query, sources)
	}

	// Phase 3: reranking
	ranked, err := p.reranker.Rerank(ctx, req.Embedder, p.Config, rewritten.Query, sources, req.OptimizationMode)
	if err != nil {
		p.logger.Error("pipeline", "reranking failed", map[string]interface{}{
			"focusMode": p.Config.Name,
			"error":     err.Error(),
		})
		p.emit(ctx, out, errorEvent(CodeChainError, "Failed to rank sources"))
		return
	}

	// The source list is final: publish it before streaming so clients can
	// resolve [n] citations against it.
	if len(ranked) > 0 {
		if !p.emit(ctx, out, sourcesEvent(ranked)) {
			return
		}
	}

	// Phase 4: answer synthesis
	stream, err := p.generator.Stream(ctx, req.Chat, p.Config, rewritten.Query, req.History, ranked, time.Now())
	if err != nil {
		p.logger.Error("pipeline", "answer generation failed", map[string]interface{}{
			"focusMode": p.Config.Name,
			"error":     err.Error(),
		})
		p.emit(ctx, out, errorEvent(CodeChainError, "Failed to generate the answer"))
		return
	}

	for chunk := range stream {
		if chunk.Err != nil {
			p.logger.Error("pipeline", "model stream failed", map[string]interface{}{
				"focusMode": p.Config.Name,
				"error":     chunk.Err.Error(),
			})
			p.emit(ctx, out, errorEvent(CodeChainError, "Model stream failed"))
			return
		}
		if !p.emit(ctx, out, tokenEvent(chunk.Content)) {
			return
		}
	}
	if ctx.Err() != nil {
		return
	}

	p.emit(ctx, out, endEvent())
}

// summarizeLinkSources condenses the chunks fetched for each explicit link
// into one summary source per link. A failed summary keeps the raw chunks
// for that link.
func (p *Pipeline) summarizeLinkSources(ctx context.Context, chat llm.LLMProvider, query string, sources []rag.Source) []rag.Source {
	byURL := make(map[string][]rag.Source)
	var order []string
	for _, s := range sources {
		if _, seen := byURL[s.URL]; !seen {
			order = append(order, s.URL)
		}
		byURL[s.URL] = append(byURL[s.URL], s)
	}

	var mu sync.Mutex
	summaries := make(map[string]string)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.summarizeConcurrency)

	for _, url := range order {
		chunks := byURL[url]
		g.Go(func() error {
			var text strings.Builder
			for _, c := range chunks {
				text.WriteString(c.Content)
				text.WriteString("\n")
			}

			rendered := prompt.Render(prompt.DocumentSummarizer, map[string]string{
				"query": query,
				"text":  text.String(),
			})
			raw, err := chat.Generate(gctx, rendered, llm.WithTemperature(0))
			if err != nil {
				p.logger.Warn("pipeline", "document summary failed", map[string]interface{}{
					"url":   url,
					"error": err.Error(),
				})
				return nil
			}

			summary := raw
			if block, ok := parseSummaryBlock(raw); ok {
				summary = block
			}

			mu.Lock()
			summaries[url] = strings.TrimSpace(summary)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	out := make([]rag.Source, 0, len(order))
	for _, url := range order {
		chunks := byURL[url]
		if summary, ok := summaries[url]; ok && summary != "" {
			out = append(out, rag.Source{
				Title:    chunks[0].Title,
				URL:      url,
				Content:  summary,
				Metadata: chunks[0].Metadata,
			})
			continue
		}
		out = append(out, chunks...)
	}
	return out
}

func parseSummaryBlock(text string) (string, bool) {
	start := strings.Index(text, "<summary>")
	if start == -1 {
		return "", false
	}
	rest := text[start+len("<summary>"):]
	end := strings.Index(rest, "</summary>")
	if end == -1 {
		return "", false
	}
	return rest[:end], true
}

// emit sends an event unless the run is cancelled; it reports whether the
// event was delivered.
func (p *Pipeline) emit(ctx context.Context, out chan<- Event, ev Event) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
