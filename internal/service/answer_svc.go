package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ug2454/RAG-demo/internal/store"
)

const (
	// contextSeparator joins retrieved chunk texts into the context block.
	contextSeparator = "\n---\n"

	systemPrompt = "You are an expert RAG assistant."

	userPromptTemplate = "You are an expert assistant. Given the following context chunks (from user files) and a question, " +
		"give a concise answer based strictly on the context. Cite text by quoting or listing sources if helpful.\n\n" +
		"Context Chunks:\n%s\n\nQuestion:\n%s\n\nAnswer:"
)

// EmptyRetrievalPolicy controls what happens when the store returns no
// records for a question.
type EmptyRetrievalPolicy string

const (
	// EmptyRetrievalAnswer proceeds with an empty context block and lets
	// the model say it has no information.
	EmptyRetrievalAnswer EmptyRetrievalPolicy = "answer"
	// EmptyRetrievalFail rejects the question instead of synthesizing.
	EmptyRetrievalFail EmptyRetrievalPolicy = "fail"
)

// AnswerResult carries the synthesized answer, the retrieved chunk texts
// used as evidence, and the full prompt sent to the model.
type AnswerResult struct {
	Answer   string
	Evidence []string
	Prompt   string
}

// AnswerService runs the question pipeline: embed the query, retrieve the
// nearest chunks, assemble the prompt, call the model.
type AnswerService struct {
	embedder    Embedder
	completer   Completer
	store       store.Store
	topK        int
	emptyPolicy EmptyRetrievalPolicy
}

// NewAnswerService creates a new answer service.
func NewAnswerService(embedder Embedder, completer Completer, st store.Store, topK int, emptyPolicy EmptyRetrievalPolicy) *AnswerService {
	if topK <= 0 {
		topK = 5
	}
	if emptyPolicy == "" {
		emptyPolicy = EmptyRetrievalAnswer
	}
	return &AnswerService{
		embedder:    embedder,
		completer:   completer,
		store:       st,
		topK:        topK,
		emptyPolicy: emptyPolicy,
	}
}

// Answer produces an answer for the question from the stored chunks. The
// store's ranking is taken as-is; no reranking happens here.
func (s *AnswerService) Answer(ctx context.Context, query string) (*AnswerResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	embeddings, err := s.embedder.GenerateEmbeddings(ctx, []string{query})
	if err != nil {
		return nil, stageErr(StageQueryEmbedding, err)
	}

	results, err := s.store.Query(ctx, embeddings[0], s.topK)
	if err != nil {
		return nil, stageErr(StageVectorSearch, err)
	}

	if len(results) == 0 && s.emptyPolicy == EmptyRetrievalFail {
		return nil, ErrNoContext
	}

	evidence := make([]string, len(results))
	for i, r := range results {
		evidence[i] = r.Content
	}

	prompt := fmt.Sprintf(userPromptTemplate, strings.Join(evidence, contextSeparator), query)

	answer, err := s.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, stageErr(StageSynthesis, err)
	}

	return &AnswerResult{
		Answer:   answer,
		Evidence: evidence,
		Prompt:   prompt,
	}, nil
}
