// Package pgvector implements the vector store contract on Postgres with
// the pgvector extension.
package pgvector

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/ug2454/RAG-demo/internal/model"
	"github.com/ug2454/RAG-demo/internal/store"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, records []store.Record) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]model.ChunkRecord, len(records))
	for i, r := range records {
		rows[i] = model.ChunkRecord{
			ID:        r.ID,
			Content:   r.Content,
			Embedding: r.Embedding,
			Metadata:  r.Metadata,
		}
		if v, ok := r.Metadata["doc_id"].(string); ok {
			if docID, err := uuid.Parse(v); err == nil {
				rows[i].DocID = docID
			}
		}
		if v, ok := r.Metadata["chunk_index"].(int); ok {
			rows[i].ChunkIndex = v
		}
		if v, ok := r.Metadata["filename"].(string); ok {
			rows[i].Filename = v
		}
	}

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("bulk insert failed: %w", err)
	}
	return nil
}

func (s *Store) Query(ctx context.Context, embedding pgvector.Vector, topK int) ([]store.Result, error) {
	if topK <= 0 {
		topK = 5
	}

	var rows []struct {
		model.ChunkRecord
		Distance float64 `gorm:"column:distance"`
	}

	// Cosine distance, best match first.
	err := s.db.WithContext(ctx).
		Table("documents").
		Select("*, embedding <=> ? as distance", embedding).
		Where("embedding IS NOT NULL").
		Order("distance ASC").
		Limit(topK).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}

	results := make([]store.Result, len(rows))
	for i, r := range rows {
		results[i] = store.Result{
			ID:       r.ID,
			Content:  r.Content,
			Metadata: r.Metadata,
			Distance: r.Distance,
		}
	}
	return results, nil
}
