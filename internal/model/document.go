package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// ChunkRecord is one stored retrieval unit: a chunk of an uploaded document
// paired with its embedding vector. Records are written once at ingestion
// time and never mutated.
type ChunkRecord struct {
	ID         string          `gorm:"size:100;primaryKey" json:"id"`
	DocID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"doc_id"`
	ChunkIndex int             `gorm:"not null" json:"chunk_index"`
	Filename   string          `gorm:"size:500;not null" json:"filename"`
	Content    string          `gorm:"type:text;not null" json:"content"`
	Embedding  pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
	Metadata   JSONMap         `gorm:"type:jsonb" json:"metadata"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (ChunkRecord) TableName() string {
	return "documents"
}

// ChunkID builds the globally unique identifier for a chunk within a document.
func ChunkID(docID uuid.UUID, chunkIndex int) string {
	return fmt.Sprintf("%s_chunk_%d", docID, chunkIndex)
}

// ChunkMetadata builds the metadata map stored alongside each chunk.
func ChunkMetadata(filename string, docID uuid.UUID, chunkIndex int) JSONMap {
	return JSONMap{
		"filename":    filename,
		"doc_id":      docID.String(),
		"chunk_index": chunkIndex,
	}
}
