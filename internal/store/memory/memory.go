// Package memory implements the vector store contract in process memory
// with brute-force cosine distance. It backs the dev mode that runs without
// Postgres and serves as the store fake in tests.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/pgvector/pgvector-go"

	"github.com/ug2454/RAG-demo/internal/store"
)

type Store struct {
	mu      sync.RWMutex
	records []store.Record
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Insert(ctx context.Context, records []store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
	return nil
}

func (s *Store) Query(ctx context.Context, embedding pgvector.Vector, topK int) ([]store.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if topK <= 0 {
		topK = 5
	}

	q := embedding.Slice()
	results := make([]store.Result, 0, len(s.records))
	for _, r := range s.records {
		v := r.Embedding.Slice()
		if len(v) != len(q) {
			return nil, fmt.Errorf("dimension mismatch: record %s has %d dimensions, query has %d", r.ID, len(v), len(q))
		}
		results = append(results, store.Result{
			ID:       r.ID,
			Content:  r.Content,
			Metadata: r.Metadata,
			Distance: cosineDistance(q, v),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	if topK < len(results) {
		results = results[:topK]
	}
	return results, nil
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// cosineDistance expects equal-length vectors; Query checks that.
func cosineDistance(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
