package rewriter

import (
	"strings"

	"ai-answer-engine-be/pkg/rag"
)

// Kind classifies what the rewrite model produced.
type Kind int

const (
	// KindRewritten means retrieval proceeds with Result.Query (and Links).
	KindRewritten Kind = iota
	// KindShortCircuit means Result.Answer is the final answer; no retrieval.
	KindShortCircuit
	// KindSkip means a sentinel matched; a decline message is streamed.
	KindSkip
)

// Result is the tagged outcome of parsing the rewrite model's raw text.
type Result struct {
	Kind   Kind
	Query  string   // search query (KindRewritten)
	Links  []string // explicit links from the <links> block (KindRewritten)
	Answer string   // direct conversational reply (KindShortCircuit)
	Reason string   // matched sentinel (KindSkip)
}

// Parse is the single place where the model's stringly-typed rewrite output
// is interpreted. Rules, in order:
//  1. a <question> value equal to a sentinel (or "not_needed") skips retrieval
//  2. for direct-reply modes, text without a <question> tag or <links> block
//     is a conversational answer and short-circuits the pipeline
//  3. anything else is the rewritten search query, with optional links
func Parse(raw string, cfg *rag.FocusModeConfig) Result {
	links := parseBlockLines(raw, "links")
	question, hasTag := parseBlock(raw, "question")
	if !hasTag {
		question = strings.TrimSpace(raw)
	}
	question = trimDecoration(question)

	if isSentinel(question, cfg) {
		return Result{Kind: KindSkip, Reason: question}
	}

	if cfg.DirectReply && !hasTag && len(links) == 0 {
		return Result{Kind: KindShortCircuit, Answer: strings.TrimSpace(raw)}
	}

	return Result{Kind: KindRewritten, Query: question, Links: links}
}

func isSentinel(question string, cfg *rag.FocusModeConfig) bool {
	normalized := strings.ToLower(question)
	if normalized == "not_needed" {
		return true
	}
	for _, s := range cfg.Sentinels {
		if normalized == strings.ToLower(s) {
			return true
		}
	}
	return false
}

// parseBlock extracts the content between <key> and </key>.
func parseBlock(text, key string) (string, bool) {
	open := "<" + key + ">"
	close := "</" + key + ">"

	start := strings.Index(text, open)
	if start == -1 {
		return "", false
	}
	rest := text[start+len(open):]
	end := strings.Index(rest, close)
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// parseBlockLines extracts a block and splits it into non-empty lines.
func parseBlockLines(text, key string) []string {
	block, ok := parseBlock(text, key)
	if !ok {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = trimDecoration(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// trimDecoration strips the wrapping backticks and quotes models like to add.
func trimDecoration(s string) string {
	return strings.Trim(strings.TrimSpace(s), "`\"' ")
}
