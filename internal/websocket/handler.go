package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"ai-answer-engine-be/internal/dto"
	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/internal/repository/contract"
	"ai-answer-engine-be/internal/service"
	"ai-answer-engine-be/pkg/rag/focus"
)

// Handler upgrades connections and resolves the chat/embedding models the
// session will use from query parameters.
type Handler struct {
	registry *focus.Registry
	models   service.IModelService
	chats    contract.ChatRepository
	messages contract.ChatMessageRepository
	logger   logger.ILogger
}

func NewHandler(
	registry *focus.Registry,
	models service.IModelService,
	chats contract.ChatRepository,
	messages contract.ChatMessageRepository,
	log logger.ILogger,
) *Handler {
	return &Handler{
		registry: registry,
		models:   models,
		chats:    chats,
		messages: messages,
		logger:   log,
	}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(h.serve))
}

func (h *Handler) serve(conn *websocket.Conn) {
	defer conn.Close()

	chatSel := selectionFromQuery(conn, "chatModelProvider", "chatModel")
	embedSel := selectionFromQuery(conn, "embeddingModelProvider", "embeddingModel")

	chatModel, err := h.models.ResolveChat(chatSel)
	if err != nil {
		h.rejectModelSelection(conn, err)
		return
	}
	embedder, err := h.models.ResolveEmbedding(embedSel)
	if err != nil {
		h.rejectModelSelection(conn, err)
		return
	}

	session := NewSession(conn, h.registry, chatModel, embedder, h.chats, h.messages, h.logger)
	session.Run()
}

func (h *Handler) rejectModelSelection(conn *websocket.Conn, err error) {
	h.logger.Warn("websocket", "rejecting connection, invalid model selection", map[string]interface{}{
		"error": err.Error(),
	})
	_ = conn.WriteJSON(errorEvent{
		Type: "error",
		Data: "Invalid model selected",
		Key:  KeyInvalidModelSelected,
	})
}

// selectionFromQuery reads a model selection off the upgrade request. No
// provider parameter means "use the server default", which ResolveChat /
// ResolveEmbedding handle by falling back to configuration.
func selectionFromQuery(conn *websocket.Conn, providerKey, modelKey string) *dto.ModelSelection {
	provider := conn.Query(providerKey)
	if provider == "" {
		return nil
	}
	return &dto.ModelSelection{
		Provider:         provider,
		Model:            conn.Query(modelKey),
		CustomOpenAIBase: conn.Query("openAIBaseURL"),
		CustomOpenAIKey:  conn.Query("openAIApiKey"),
	}
}
