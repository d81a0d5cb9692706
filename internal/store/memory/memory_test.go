package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/ug2454/RAG-demo/internal/model"
	"github.com/ug2454/RAG-demo/internal/store"
)

func record(id string, vec []float32, content string) store.Record {
	return store.Record{
		ID:        id,
		Embedding: pgvector.NewVector(vec),
		Content:   content,
		Metadata:  model.JSONMap{"filename": "test.txt"},
	}
}

func TestQueryRanksByCosineDistance(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.Insert(ctx, []store.Record{
		record("a", []float32{1, 0, 0}, "exact match"),
		record("b", []float32{0, 1, 0}, "orthogonal"),
		record("c", []float32{0.9, 0.1, 0}, "near match"),
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	results, err := s.Query(ctx, pgvector.NewVector([]float32{1, 0, 0}), 3)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	wantOrder := []string{"a", "c", "b"}
	for i, want := range wantOrder {
		if results[i].ID != want {
			t.Errorf("result %d = %s, want %s", i, results[i].ID, want)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i].Distance < results[i-1].Distance {
			t.Errorf("results not ordered by ascending distance at %d", i)
		}
	}
}

func TestQueryTopKLimit(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var records []store.Record
	for i := 0; i < 10; i++ {
		records = append(records, record(model.ChunkID(uuid.Nil, i), []float32{float32(i), 1}, "chunk"))
	}
	if err := s.Insert(ctx, records); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	results, err := s.Query(ctx, pgvector.NewVector([]float32{1, 1}), 5)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("expected 5 results, got %d", len(results))
	}
}

func TestQueryDimensionMismatch(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Insert(ctx, []store.Record{record("a", []float32{1, 0, 0}, "three dims")}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if _, err := s.Query(ctx, pgvector.NewVector([]float32{1, 0}), 5); err == nil {
		t.Fatal("expected error for mismatched query dimensions")
	}
}

func TestQueryEmptyStore(t *testing.T) {
	s := NewStore()
	results, err := s.Query(context.Background(), pgvector.NewVector([]float32{1, 0}), 5)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results from empty store, got %d", len(results))
	}
}
