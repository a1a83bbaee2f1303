package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Search   SearchConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type SearchConfig struct {
	SearxNGURL        string
	FetchConcurrency  int
	ChunkSize         int
	ChunkOverlap      int
	SimilarityMeasure string // "cosine" or "dot"
	RerankTopK        int
	DiscoverCacheTTL  int // minutes
}

type AIConfig struct {
	ChatProvider      string // "ollama" or "openai"
	ChatModel         string
	ChatBaseURL       string
	ChatAPIKey        string
	EmbeddingProvider string
	EmbeddingModel    string
	EmbeddingBaseURL  string
	EmbeddingAPIKey   string
	EmbedChunkTopic   string
	UploadDir         string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3001"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3001"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Search: SearchConfig{
			SearxNGURL:        getEnv("SEARXNG_API_URL", "http://localhost:8080"),
			FetchConcurrency:  getEnvAsInt("LINK_FETCH_CONCURRENCY", 4),
			ChunkSize:         getEnvAsInt("CHUNK_SIZE", 500),
			ChunkOverlap:      getEnvAsInt("CHUNK_OVERLAP", 100),
			SimilarityMeasure: getEnv("SIMILARITY_MEASURE", "cosine"),
			RerankTopK:        getEnvAsInt("RERANK_TOP_K", 3),
			DiscoverCacheTTL:  getEnvAsInt("DISCOVER_CACHE_TTL_MINUTES", 30),
		},
		Ai: AIConfig{
			ChatProvider:      getEnv("CHAT_PROVIDER", "ollama"),
			ChatModel:         getEnv("CHAT_MODEL", "llama3.1:latest"),
			ChatBaseURL:       getEnv("CHAT_BASE_URL", "http://localhost:11434"),
			ChatAPIKey:        getEnv("CHAT_API_KEY", ""),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "nomic-embed-text"),
			EmbeddingBaseURL:  getEnv("EMBEDDING_BASE_URL", "http://localhost:11434"),
			EmbeddingAPIKey:   getEnv("EMBEDDING_API_KEY", ""),
			EmbedChunkTopic:   getEnv("EMBED_FILE_CHUNK_TOPIC_NAME", "EMBED_FILE_CHUNK"),
			UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
