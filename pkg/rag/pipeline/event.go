package pipeline

import "ai-answer-engine-be/pkg/rag"

// EventKind tags a pipeline event.
type EventKind string

const (
	EventToken   EventKind = "token"
	EventSources EventKind = "sources"
	EventEnd     EventKind = "end"
	EventError   EventKind = "error"
)

// Stable machine-readable error codes carried on error events.
const (
	CodeChainError = "CHAIN_ERROR"
)

// Event is one unit of a pipeline's ordered output stream. A run emits at
// most one sources event, then tokens in generation order, terminated by
// exactly one end or one error.
type Event struct {
	Kind    EventKind
	Token   string
	Sources []rag.Source
	Message string // human-readable error text
	Code    string // machine error code
}

func tokenEvent(text string) Event {
	return Event{Kind: EventToken, Token: text}
}

func sourcesEvent(sources []rag.Source) Event {
	return Event{Kind: EventSources, Sources: sources}
}

func endEvent() Event {
	return Event{Kind: EventEnd}
}

func errorEvent(code, message string) Event {
	return Event{Kind: EventError, Code: code, Message: message}
}
