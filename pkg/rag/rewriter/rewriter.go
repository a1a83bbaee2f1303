package rewriter

import (
	"context"
	"fmt"

	"ai-answer-engine-be/pkg/llm"
	"ai-answer-engine-be/pkg/rag"
	"ai-answer-engine-be/pkg/rag/prompt"
)

// Rewriter turns a raw user query into a search query, a direct reply, or a
// skip decision, using the mode's retriever prompt.
type Rewriter struct{}

func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Rewrite invokes the chat model once (non-streaming) and classifies its
// output. Modes without a rewrite prompt pass the query through untouched.
func (r *Rewriter) Rewrite(
	ctx context.Context,
	chat llm.LLMProvider,
	cfg *rag.FocusModeConfig,
	query string,
	history []llm.Message,
) (Result, error) {
	if cfg.QueryRewritePrompt == "" {
		return Result{Kind: KindRewritten, Query: query}, nil
	}

	rendered := prompt.Render(cfg.QueryRewritePrompt, map[string]string{
		"chat_history": prompt.FormatHistory(history),
		"query":        query,
	})

	raw, err := chat.Generate(ctx, rendered, llm.WithTemperature(0))
	if err != nil {
		return Result{}, fmt.Errorf("query rewrite: %w", err)
	}

	return Parse(raw, cfg), nil
}
