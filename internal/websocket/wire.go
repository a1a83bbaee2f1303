package websocket

import (
	"crypto/rand"
	"encoding/hex"

	"ai-answer-engine-be/pkg/rag"
)

// Stable machine-readable keys carried on outbound error events.
const (
	KeyInvalidFormat          = "INVALID_FORMAT"
	KeyInvalidFocusMode       = "INVALID_FOCUS_MODE"
	KeyInvalidModelSelected   = "INVALID_MODEL_SELECTED"
	KeyMessageProcessingError = "MESSAGE_PROCESSING_ERROR"
	KeyChainError             = "CHAIN_ERROR"
)

// inboundMessage is one client query frame.
type inboundMessage struct {
	Type             string      `json:"type"`
	Message          innerMsg    `json:"message"`
	FocusMode        string      `json:"focusMode"`
	OptimizationMode string      `json:"optimizationMode"`
	History          [][2]string `json:"history"`
	Files            []string    `json:"files"`
}

type innerMsg struct {
	MessageId string `json:"messageId"`
	ChatId    string `json:"chatId"`
	Content   string `json:"content"`
}

type signalEvent struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

type tokenEvent struct {
	Type      string `json:"type"`
	Data      string `json:"data"`
	MessageId string `json:"messageId"`
}

type sourcesEvent struct {
	Type      string       `json:"type"`
	Data      []rag.Source `json:"data"`
	MessageId string       `json:"messageId"`
}

type messageEndEvent struct {
	Type      string `json:"type"`
	MessageId string `json:"messageId"`
}

type errorEvent struct {
	Type string `json:"type"`
	Data string `json:"data"`
	Key  string `json:"key"`
}

// newMessageId generates the id tagged onto every outbound frame of one
// assistant answer.
func newMessageId() string {
	buf := make([]byte, 7)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
