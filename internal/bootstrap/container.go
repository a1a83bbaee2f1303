package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"ai-answer-engine-be/internal/config"
	"ai-answer-engine-be/internal/controller"
	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/internal/repository/implementation"
	"ai-answer-engine-be/internal/service"
	"ai-answer-engine-be/internal/websocket"
	"ai-answer-engine-be/pkg/embedding"
	"ai-answer-engine-be/pkg/rag/focus"
	"ai-answer-engine-be/pkg/rag/ingest"
	"ai-answer-engine-be/pkg/rag/rerank"
	"ai-answer-engine-be/pkg/rag/retriever"
	"ai-answer-engine-be/pkg/rag/similarity"
	"ai-answer-engine-be/pkg/search"
)

type Container struct {
	// Controllers
	SearchController   controller.ISearchController
	ChatController     controller.IChatController
	UploadController   controller.IUploadController
	DiscoverController controller.IDiscoverController
	ModelController    controller.IModelController

	// WebSocket
	WebSocketHandler *websocket.Handler

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// Repositories
	chatRepo := implementation.NewChatRepository(db)
	messageRepo := implementation.NewChatMessageRepository(db)
	chunkRepo := implementation.NewFileChunkRepository(db)

	// Default embedding provider for the background consumer. Query-time
	// embedding uses whatever the connection resolved.
	embeddingProvider, err := embedding.NewProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.EmbeddingBaseURL,
		cfg.Ai.EmbeddingAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize embedding provider: %v", err)
	}
	log.Printf("[INFO] Using embedding provider: %s (%s)", cfg.Ai.EmbeddingProvider, cfg.Ai.EmbeddingModel)

	// Retrieval stack
	searchClient := search.NewClient(cfg.Search.SearxNGURL)
	ingestor := ingest.NewIngestor(
		cfg.Search.ChunkSize,
		cfg.Search.ChunkOverlap,
		cfg.Search.FetchConcurrency,
		sysLogger,
	)
	fileLoader := service.NewFileChunkLoader(chunkRepo)
	ret := retriever.NewRetriever(searchClient, ingestor, fileLoader, sysLogger)

	measure := similarity.MeasureCosine
	if cfg.Search.SimilarityMeasure == "dot" {
		measure = similarity.MeasureDot
	}
	reranker := rerank.NewReranker(measure, cfg.Search.RerankTopK, sysLogger)

	registry := focus.NewRegistry(ret, reranker, sysLogger)

	// Services
	modelService := service.NewModelService(cfg)
	searchService := service.NewSearchService(registry, modelService)
	chatService := service.NewChatService(chatRepo, messageRepo)

	publisherService := service.NewPublisherService(cfg.Ai.EmbedChunkTopic, pubSub)
	uploadService := service.NewUploadService(
		publisherService,
		cfg.Search.ChunkSize,
		cfg.Search.ChunkOverlap,
		sysLogger,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ai.EmbedChunkTopic,
		chunkRepo,
		embeddingProvider,
		sysLogger,
	)

	discoverService := service.NewDiscoverService(
		searchClient,
		time.Duration(cfg.Search.DiscoverCacheTTL)*time.Minute,
		sysLogger,
	)

	wsHandler := websocket.NewHandler(registry, modelService, chatRepo, messageRepo, sysLogger)

	return &Container{
		SearchController:   controller.NewSearchController(searchService),
		ChatController:     controller.NewChatController(chatService),
		UploadController:   controller.NewUploadController(uploadService),
		DiscoverController: controller.NewDiscoverController(discoverService),
		ModelController:    controller.NewModelController(modelService, registry),

		WebSocketHandler: wsHandler,

		ConsumerService: consumerService,
	}
}
