package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ug2454/RAG-demo/internal/service"
)

type AskHandler struct {
	svc *service.AnswerService
}

func NewAskHandler(svc *service.AnswerService) *AskHandler {
	return &AskHandler{svc: svc}
}

// AskResponse is the /ask success payload: the answer, the retrieved chunk
// texts used as evidence, and the full prompt sent to the model.
type AskResponse struct {
	Answer     string   `json:"answer"`
	Evidence   []string `json:"evidence"`
	LLMContext string   `json:"llm_context"`
	Message    string   `json:"message"`
}

// Ask answers a question from the stored document chunks.
func (h *AskHandler) Ask(c *gin.Context) {
	query := c.PostForm("query")

	result, err := h.svc.Answer(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AskResponse{
		Answer:     result.Answer,
		Evidence:   result.Evidence,
		LLMContext: result.Prompt,
		Message:    "Answer generated using retrieved context.",
	})
}
