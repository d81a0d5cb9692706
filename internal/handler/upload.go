package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ug2454/RAG-demo/internal/service"
)

type UploadHandler struct {
	svc *service.IngestService
}

func NewUploadHandler(svc *service.IngestService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload ingests one PDF or TXT document: parse, chunk, embed, store.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}

	report, err := h.svc.Ingest(c.Request.Context(), header.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
