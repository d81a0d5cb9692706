package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Server
	Host        string
	Port        string
	Environment string
	GinMode     string

	// Vector store
	DatabaseURL string
	VectorStore string // "pgvector" or "memory"

	// Embedding / LLM provider (OpenAI compatible)
	OpenAIAPIKey        string
	OpenAIBaseURL       string
	EmbeddingModel      string
	EmbeddingDimensions int
	ChatModel           string

	// Pipeline
	ChunkSize            int
	TopK                 int
	EmptyRetrievalPolicy string

	// Browser clients
	AllowedOrigin string
}

func Load() *Config {
	return &Config{
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "8001"),
		Environment: getEnv("ENVIRONMENT", "development"),
		GinMode:     getEnv("GIN_MODE", "debug"),

		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/rag_demo?sslmode=disable"),
		VectorStore: getEnv("VECTOR_STORE", "pgvector"),

		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:       getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		EmbeddingModel:      getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		EmbeddingDimensions: int(getEnvInt64("EMBEDDING_DIMENSIONS", 1536)),
		ChatModel:           getEnv("CHAT_MODEL", "gpt-3.5-turbo"),

		ChunkSize:            int(getEnvInt64("CHUNK_SIZE", 500)),
		TopK:                 int(getEnvInt64("TOP_K", 5)),
		EmptyRetrievalPolicy: getEnv("EMPTY_RETRIEVAL_POLICY", "answer"),

		AllowedOrigin: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}
