package focus

import (
	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/pkg/rag"
	"ai-answer-engine-be/pkg/rag/pipeline"
	"ai-answer-engine-be/pkg/rag/prompt"
	"ai-answer-engine-be/pkg/rag/rerank"
	"ai-answer-engine-be/pkg/rag/retriever"
)

const defaultDecline = "I'm not able to help with that in this focus mode. Try switching modes or rephrasing your question."

// Registry maps focus-mode names to their configured pipelines. Built once
// at startup and read-only afterwards, so it is safe to share across
// concurrent sessions without locking.
type Registry struct {
	pipelines map[string]*pipeline.Pipeline
}

// NewRegistry builds the pipeline table for all supported focus modes.
func NewRegistry(ret *retriever.Retriever, rr *rerank.Reranker, log logger.ILogger) *Registry {
	configs := []*rag.FocusModeConfig{
		{
			Name:                  "webSearch",
			ActiveEngines:         []string{},
			QueryRewritePrompt:    prompt.WebSearchRetriever,
			AnswerPrompt:          prompt.WebSearchResponse,
			RerankEnabled:         true,
			RerankThreshold:       0.3,
			UseWebSearch:          true,
			SummarizeBeforeAnswer: true,
			DirectReply:           true,
			Sentinels:             []string{"not_business_related"},
			DeclineMessage:        "I love talking about business and market trends! Want to know about any companies or industries?",
		},
		{
			Name:               "academicSearch",
			ActiveEngines:      []string{"arxiv", "google scholar", "pubmed"},
			QueryRewritePrompt: prompt.AcademicSearchRetriever,
			AnswerPrompt:       prompt.AcademicSearchResponse,
			RerankEnabled:      true,
			RerankThreshold:    0,
			UseWebSearch:       true,
			DeclineMessage:     defaultDecline,
		},
		{
			Name:            "writingAssistant",
			ActiveEngines:   []string{},
			AnswerPrompt:    prompt.WritingAssistant,
			RerankEnabled:   true,
			RerankThreshold: 0,
			UseWebSearch:    false,
			DeclineMessage:  defaultDecline,
		},
		{
			Name:               "wolframAlphaSearch",
			ActiveEngines:      []string{"wolframalpha"},
			QueryRewritePrompt: prompt.WolframAlphaSearchRetriever,
			AnswerPrompt:       prompt.WolframAlphaSearchResponse,
			RerankEnabled:      false,
			RerankThreshold:    0,
			UseWebSearch:       true,
			DeclineMessage:     defaultDecline,
		},
		{
			Name:               "youtubeSearch",
			ActiveEngines:      []string{"youtube"},
			QueryRewritePrompt: prompt.YoutubeSearchRetriever,
			AnswerPrompt:       prompt.YoutubeSearchResponse,
			RerankEnabled:      true,
			RerankThreshold:    0.3,
			UseWebSearch:       true,
			DeclineMessage:     defaultDecline,
		},
		{
			Name:               "redditSearch",
			ActiveEngines:      []string{"reddit"},
			QueryRewritePrompt: prompt.RedditSearchRetriever,
			AnswerPrompt:       prompt.RedditSearchResponse,
			RerankEnabled:      true,
			RerankThreshold:    0.3,
			UseWebSearch:       true,
			DeclineMessage:     defaultDecline,
		},
	}

	pipelines := make(map[string]*pipeline.Pipeline, len(configs))
	for _, cfg := range configs {
		pipelines[cfg.Name] = pipeline.New(cfg, ret, rr, log)
	}
	return &Registry{pipelines: pipelines}
}

// Get returns the pipeline for a focus mode, or false for unknown modes.
func (r *Registry) Get(name string) (*pipeline.Pipeline, bool) {
	p, ok := r.pipelines[name]
	return p, ok
}

// Names lists the registered focus modes.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.pipelines))
	for name := range r.pipelines {
		names = append(names, name)
	}
	return names
}
