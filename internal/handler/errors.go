package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ug2454/RAG-demo/internal/chunker"
	"github.com/ug2454/RAG-demo/internal/parser"
	"github.com/ug2454/RAG-demo/internal/service"
)

// respondError translates pipeline failures into HTTP responses: bad input
// is the client's fault, a missing credential is server misconfiguration,
// and provider or store failures are upstream dependency failures.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingAPIKey):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	case errors.Is(err, parser.ErrUnsupportedFileType),
		errors.Is(err, service.ErrEmptyDocument),
		errors.Is(err, service.ErrEmptyQuery),
		errors.Is(err, service.ErrNoContext),
		errors.Is(err, chunker.ErrInvalidMaxLen),
		isParseError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isStageError(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isParseError(err error) bool {
	var parseErr *parser.ParseError
	return errors.As(err, &parseErr)
}

func isStageError(err error) bool {
	var stageErr *service.StageError
	return errors.As(err, &stageErr)
}
