package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ug2454/RAG-demo/internal/config"
	"github.com/ug2454/RAG-demo/internal/service"
	"github.com/ug2454/RAG-demo/internal/store"
	"github.com/ug2454/RAG-demo/internal/store/memory"
	pgstore "github.com/ug2454/RAG-demo/internal/store/pgvector"
)

func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg.AllowedOrigin))

	// Health check endpoints
	r.GET("/health", healthCheck)
	r.GET("/ready", readinessCheck)
	r.GET("/live", livenessCheck)

	// Root endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":      "RAG Demo API",
			"version":      "1.0.0",
			"status":       "running",
			"health_check": "/health",
		})
	})

	// Initialize vector store
	var st store.Store
	if cfg.VectorStore == "memory" {
		st = memory.NewStore()
	} else {
		st = pgstore.NewStore(db)
	}

	// Initialize provider clients
	embeddingSvc := service.NewEmbeddingService(
		cfg.OpenAIAPIKey,
		cfg.OpenAIBaseURL,
		cfg.EmbeddingModel,
		cfg.EmbeddingDimensions,
	)
	chatSvc := service.NewChatService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.ChatModel)

	// Initialize pipelines
	ingestSvc := service.NewIngestService(embeddingSvc, st, cfg.ChunkSize)
	answerSvc := service.NewAnswerService(
		embeddingSvc,
		chatSvc,
		st,
		cfg.TopK,
		service.EmptyRetrievalPolicy(cfg.EmptyRetrievalPolicy),
	)

	// Initialize handlers
	uploadHandler := NewUploadHandler(ingestSvc)
	askHandler := NewAskHandler(answerSvc)

	r.POST("/upload", uploadHandler.Upload)
	r.POST("/ask", askHandler.Ask)

	return r
}

func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "rag",
	})
}

func readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

func livenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
