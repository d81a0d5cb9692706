package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ug2454/RAG-demo/internal/chunker"
	"github.com/ug2454/RAG-demo/internal/model"
	"github.com/ug2454/RAG-demo/internal/parser"
	"github.com/ug2454/RAG-demo/internal/store"
)

// chunkPreviewLimit caps how many chunk texts the upload response echoes back.
const chunkPreviewLimit = 3

// IngestionReport summarizes one successful document ingestion.
type IngestionReport struct {
	Filename     string   `json:"filename"`
	Filetype     string   `json:"filetype"`
	NumChunks    int      `json:"num_chunks"`
	DocID        string   `json:"doc_id"`
	ChunkPreview []string `json:"chunk_preview"`
}

// IngestService runs the upload pipeline: parse, chunk, embed, store.
type IngestService struct {
	embedder  Embedder
	store     store.Store
	chunkSize int
}

// NewIngestService creates a new ingestion service.
func NewIngestService(embedder Embedder, st store.Store, chunkSize int) *IngestService {
	if chunkSize < 2 {
		chunkSize = chunker.DefaultMaxLen
	}
	return &IngestService{
		embedder:  embedder,
		store:     st,
		chunkSize: chunkSize,
	}
}

// Ingest processes one uploaded document. Steps run strictly in order and
// nothing is written to the store until every chunk has an embedding, so a
// failed ingestion leaves no partial state behind.
func (s *IngestService) Ingest(ctx context.Context, filename string, data []byte) (*IngestionReport, error) {
	filetype, err := parser.DetectType(filename)
	if err != nil {
		return nil, err
	}

	text, err := parser.ExtractText(data, filetype)
	if err != nil {
		return nil, err
	}

	chunks, err := chunker.Split(text, s.chunkSize)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, ErrEmptyDocument
	}

	docID := uuid.New()

	embeddings, err := s.embedder.GenerateEmbeddings(ctx, chunks)
	if err != nil {
		return nil, stageErr(StageEmbedding, err)
	}

	records := make([]store.Record, len(chunks))
	for i, chunk := range chunks {
		records[i] = store.Record{
			ID:        model.ChunkID(docID, i),
			Embedding: embeddings[i],
			Content:   chunk,
			Metadata:  model.ChunkMetadata(filename, docID, i),
		}
	}

	if err := s.store.Insert(ctx, records); err != nil {
		return nil, stageErr(StageStorage, err)
	}

	preview := chunks
	if len(preview) > chunkPreviewLimit {
		preview = preview[:chunkPreviewLimit]
	}

	return &IngestionReport{
		Filename:     filename,
		Filetype:     string(filetype),
		NumChunks:    len(chunks),
		DocID:        docID.String(),
		ChunkPreview: preview,
	}, nil
}
