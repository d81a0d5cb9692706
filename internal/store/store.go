// Package store defines the vector store contract: a nearest-neighbor index
// over (id, embedding, text, metadata) records, ordered best-match-first by
// cosine distance.
package store

import (
	"context"

	"github.com/pgvector/pgvector-go"

	"github.com/ug2454/RAG-demo/internal/model"
)

// Record is one chunk to persist: identifier, embedding vector, raw text
// and its metadata map.
type Record struct {
	ID        string
	Embedding pgvector.Vector
	Content   string
	Metadata  model.JSONMap
}

// Result is one retrieved record. Distance is the store's cosine distance;
// lower means more similar.
type Result struct {
	ID       string
	Content  string
	Metadata model.JSONMap
	Distance float64
}

// Store is the nearest-neighbor index used by the ingestion and answer
// pipelines. Insert is a single bulk write; Query returns up to topK records
// ranked best-match-first. Implementations own all concurrency control.
type Store interface {
	Insert(ctx context.Context, records []Record) error
	Query(ctx context.Context, embedding pgvector.Vector, topK int) ([]Result, error)
}
