package service

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey indicates the embedding/LLM credential is not configured.
	ErrMissingAPIKey = errors.New("OpenAI API key environment variable not set")

	// ErrEmptyDocument indicates an upload parsed to no indexable text.
	ErrEmptyDocument = errors.New("no text found to index")

	// ErrEmptyQuery indicates an ask request with a blank question.
	ErrEmptyQuery = errors.New("query must not be empty")

	// ErrNoContext indicates retrieval returned nothing and the fail-fast
	// empty-retrieval policy is active.
	ErrNoContext = errors.New("no relevant context found for this question")
)

// Pipeline stages that can fail against a remote collaborator.
const (
	StageEmbedding      = "embedding"
	StageStorage        = "storage"
	StageQueryEmbedding = "query-embedding"
	StageVectorSearch   = "vector-search"
	StageSynthesis      = "synthesis"
)

// StageError tags an upstream failure with the pipeline stage it occurred in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}
