package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pgvector/pgvector-go"
)

// maxEmbeddingBatch caps how many texts go into one provider request.
const maxEmbeddingBatch = 20

// Embedder converts texts into embedding vectors, preserving input order.
type Embedder interface {
	GenerateEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error)
}

// EmbeddingService calls an OpenAI-compatible embeddings API.
type EmbeddingService struct {
	apiKey     string
	baseURL    string
	model      string
	dimensions int
	httpClient *http.Client
}

// NewEmbeddingService creates a new embedding service
func NewEmbeddingService(apiKey, baseURL, model string, dimensions int) *EmbeddingService {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "text-embedding-3-small"
	}
	if dimensions == 0 {
		dimensions = 1536
	}
	return &EmbeddingService{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		dimensions: dimensions,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// EmbeddingRequest represents the OpenAI embedding API request
type EmbeddingRequest struct {
	Input          interface{} `json:"input"`
	Model          string      `json:"model"`
	EncodingFormat string      `json:"encoding_format,omitempty"`
	Dimensions     int         `json:"dimensions,omitempty"`
}

// EmbeddingResponse represents the OpenAI embedding API response
type EmbeddingResponse struct {
	Object string `json:"object"`
	Data   []struct {
		Object    string    `json:"object"`
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Model string `json:"model"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

// GenerateEmbedding generates an embedding for a single text.
func (s *EmbeddingService) GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	embeddings, err := s.GenerateEmbeddings(ctx, []string{text})
	if err != nil {
		return pgvector.Vector{}, err
	}
	if len(embeddings) == 0 {
		return pgvector.Vector{}, fmt.Errorf("no embedding returned")
	}
	return embeddings[0], nil
}

// GenerateEmbeddings generates embeddings for the given texts, in input
// order. Requests are batched to respect provider limits; the whole call
// aborts on the first batch failure.
func (s *EmbeddingService) GenerateEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([]pgvector.Vector, len(texts))
	for start := 0; start < len(texts); start += maxEmbeddingBatch {
		end := start + maxEmbeddingBatch
		if end > len(texts) {
			end = len(texts)
		}
		if err := s.embedBatch(ctx, texts[start:end], vectors[start:end]); err != nil {
			return nil, err
		}
	}
	return vectors, nil
}

// embedBatch fills out with the vectors for one batch of texts. Providers
// are not guaranteed to echo the request order, so each vector is placed by
// the provider-assigned index.
func (s *EmbeddingService) embedBatch(ctx context.Context, texts []string, out []pgvector.Vector) error {
	reqBody := EmbeddingRequest{
		Input:      texts,
		Model:      s.model,
		Dimensions: s.dimensions,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/embeddings", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var embResp EmbeddingResponse
	if err := json.Unmarshal(body, &embResp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(embResp.Data) != len(texts) {
		return fmt.Errorf("expected %d embeddings, got %d", len(texts), len(embResp.Data))
	}

	for _, data := range embResp.Data {
		if data.Index < 0 || data.Index >= len(out) {
			return fmt.Errorf("embedding index %d out of range", data.Index)
		}
		out[data.Index] = pgvector.NewVector(data.Embedding)
	}
	return nil
}

// GetDimensions returns the embedding dimensions
func (s *EmbeddingService) GetDimensions() int {
	return s.dimensions
}
