package websocket

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"ai-answer-engine-be/internal/entity"
	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/internal/repository/contract"
	"ai-answer-engine-be/internal/repository/specification"
	"ai-answer-engine-be/internal/service"
	"ai-answer-engine-be/pkg/embedding"
	"ai-answer-engine-be/pkg/llm"
	"ai-answer-engine-be/pkg/rag"
	"ai-answer-engine-be/pkg/rag/focus"
	"ai-answer-engine-be/pkg/rag/pipeline"
)

// Session is the per-connection state machine. It parses inbound query
// frames, drives one pipeline run at a time, relays pipeline events as wire
// frames, and reconciles persisted chat history. Model instances are
// resolved once at connect time and reused for every query on the
// connection.
type Session struct {
	conn     *websocket.Conn
	registry *focus.Registry
	chat     llm.LLMProvider
	embedder embedding.EmbeddingProvider
	chats    contract.ChatRepository
	messages contract.ChatMessageRepository
	logger   logger.ILogger

	writeMu sync.Mutex
	running bool
	runMu   sync.Mutex
}

func NewSession(
	conn *websocket.Conn,
	registry *focus.Registry,
	chat llm.LLMProvider,
	embedder embedding.EmbeddingProvider,
	chats contract.ChatRepository,
	messages contract.ChatMessageRepository,
	log logger.ILogger,
) *Session {
	return &Session{
		conn:     conn,
		registry: registry,
		chat:     chat,
		embedder: embedder,
		chats:    chats,
		messages: messages,
		logger:   log,
	}
}

// Run reads frames until the connection drops. A pending pipeline run is
// cancelled when the read loop exits.
func (s *Session) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.send(signalEvent{Type: "signal", Data: "open"})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			s.sendError("Invalid message format", KeyInvalidFormat)
			continue
		}
		if msg.Type != "message" {
			continue
		}

		// run asynchronously so the read loop can observe the close and
		// reject queries that arrive while one is still running
		go s.handleQuery(ctx, &msg)
	}
}

func (s *Session) handleQuery(ctx context.Context, msg *inboundMessage) {
	if strings.TrimSpace(msg.Message.Content) == "" || msg.Message.ChatId == "" {
		s.sendError("Invalid message format", KeyInvalidFormat)
		return
	}

	focusMode := msg.FocusMode
	// attached files need retrieval, so file queries always run the
	// web-search pipeline regardless of the selected mode
	if len(msg.Files) > 0 {
		focusMode = "webSearch"
	}

	pipe, ok := s.registry.Get(focusMode)
	if !ok {
		s.sendError("Invalid focus mode", KeyInvalidFocusMode)
		return
	}

	s.runMu.Lock()
	if s.running {
		s.runMu.Unlock()
		s.sendError("A message is already being processed", KeyMessageProcessingError)
		return
	}
	s.running = true
	s.runMu.Unlock()

	defer func() {
		s.runMu.Lock()
		s.running = false
		s.runMu.Unlock()
	}()

	if err := s.reconcileHistory(ctx, msg, focusMode); err != nil {
		s.logger.Error("websocket", "failed to persist chat history", map[string]interface{}{
			"chatId": msg.Message.ChatId,
			"error":  err.Error(),
		})
		s.sendError("Failed to process the message", KeyMessageProcessingError)
		return
	}

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	events := pipe.SearchAndAnswer(runCtx, pipeline.Request{
		Query:            msg.Message.Content,
		History:          service.HistoryToMessages(msg.History),
		Chat:             s.chat,
		Embedder:         s.embedder,
		OptimizationMode: msg.OptimizationMode,
		FileIds:          msg.Files,
	})

	assistantId := newMessageId()
	var answer strings.Builder
	var sources []rag.Source
	completed := false

	for ev := range events {
		switch ev.Kind {
		case pipeline.EventToken:
			answer.WriteString(ev.Token)
			s.send(tokenEvent{Type: "message", Data: ev.Token, MessageId: assistantId})
		case pipeline.EventSources:
			sources = ev.Sources
			s.send(sourcesEvent{Type: "sources", Data: ev.Sources, MessageId: assistantId})
		case pipeline.EventEnd:
			completed = true
			s.send(messageEndEvent{Type: "messageEnd", MessageId: assistantId})
		case pipeline.EventError:
			s.sendError(ev.Message, ev.Code)
		}
	}

	// a run that ended in error or was cancelled leaves no partial
	// assistant message behind
	if !completed || ctx.Err() != nil {
		return
	}

	assistant := &entity.ChatMessage{
		Id:        uuid.New(),
		MessageId: assistantId,
		ChatId:    msg.Message.ChatId,
		Role:      "assistant",
		Content:   answer.String(),
		Metadata: entity.MessageMetadata{
			CreatedAt: time.Now(),
			Sources:   sources,
		},
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(ctx, assistant); err != nil {
		s.logger.Error("websocket", "failed to persist assistant message", map[string]interface{}{
			"chatId": msg.Message.ChatId,
			"error":  err.Error(),
		})
	}
}

// reconcileHistory upserts the chat record and the human message. A resent
// messageId means the client edited that turn: every later message in the
// chat is deleted before the pipeline regenerates from there.
func (s *Session) reconcileHistory(ctx context.Context, msg *inboundMessage, focusMode string) error {
	chat, err := s.chats.FindOne(ctx, specification.Filter("id", msg.Message.ChatId))
	if err != nil {
		return err
	}
	if chat == nil {
		files := make([]entity.FileRef, 0, len(msg.Files))
		for _, id := range msg.Files {
			files = append(files, entity.FileRef{FileId: id, Name: id})
		}
		chat = &entity.Chat{
			Id:        msg.Message.ChatId,
			Title:     msg.Message.Content,
			FocusMode: focusMode,
			Files:     files,
			CreatedAt: time.Now(),
		}
		if err := s.chats.Create(ctx, chat); err != nil {
			return err
		}
	}

	existing, err := s.messages.FindOne(ctx,
		specification.ByChatID{ChatID: msg.Message.ChatId},
		specification.ByMessageID{MessageID: msg.Message.MessageId},
	)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.messages.DeleteAfterSeq(ctx, msg.Message.ChatId, existing.Seq)
	}

	human := &entity.ChatMessage{
		Id:        uuid.New(),
		MessageId: msg.Message.MessageId,
		ChatId:    msg.Message.ChatId,
		Role:      "user",
		Content:   msg.Message.Content,
		Metadata: entity.MessageMetadata{
			CreatedAt: time.Now(),
		},
		CreatedAt: time.Now(),
	}
	return s.messages.Create(ctx, human)
}

func (s *Session) send(v interface{}) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(v); err != nil {
		s.logger.Warn("websocket", "failed to write frame", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Session) sendError(text, key string) {
	s.send(errorEvent{Type: "error", Data: text, Key: key})
}
