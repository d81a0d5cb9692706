package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pgvector/pgvector-go"

	"github.com/ug2454/RAG-demo/internal/service"
	"github.com/ug2454/RAG-demo/internal/store"
	"github.com/ug2454/RAG-demo/internal/store/memory"
)

type stubEmbedder struct {
	err error
}

func (s *stubEmbedder) GenerateEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]pgvector.Vector, len(texts))
	for i := range texts {
		out[i] = pgvector.NewVector([]float32{1, 0})
	}
	return out, nil
}

type stubCompleter struct {
	answer string
}

func (s *stubCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	return s.answer, nil
}

type brokenStore struct {
	err error
}

func (s *brokenStore) Insert(ctx context.Context, records []store.Record) error {
	return s.err
}

func (s *brokenStore) Query(ctx context.Context, embedding pgvector.Vector, topK int) ([]store.Result, error) {
	return nil, s.err
}

func newTestRouter(embedder service.Embedder, completer service.Completer) (*gin.Engine, *memory.Store) {
	st := memory.NewStore()
	return routerWithStore(embedder, completer, st), st
}

func routerWithStore(embedder service.Embedder, completer service.Completer, st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ingestSvc := service.NewIngestService(embedder, st, 500)
	answerSvc := service.NewAnswerService(embedder, completer, st, 5, service.EmptyRetrievalAnswer)

	r := gin.New()
	r.POST("/upload", NewUploadHandler(ingestSvc).Upload)
	r.POST("/ask", NewAskHandler(answerSvc).Ask)
	return r
}

func multipartFile(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestUploadTXT(t *testing.T) {
	r, st := newTestRouter(&stubEmbedder{}, &stubCompleter{})

	body, contentType := multipartFile(t, "resume.txt", strings.Repeat("x", 1200))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Filename     string   `json:"filename"`
		Filetype     string   `json:"filetype"`
		NumChunks    int      `json:"num_chunks"`
		DocID        string   `json:"doc_id"`
		ChunkPreview []string `json:"chunk_preview"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Filename != "resume.txt" || resp.Filetype != "txt" {
		t.Errorf("unexpected filename/filetype: %+v", resp)
	}
	if resp.NumChunks != 4 {
		t.Errorf("num_chunks = %d, want 4", resp.NumChunks)
	}
	if resp.DocID == "" {
		t.Error("doc_id missing")
	}
	if len(resp.ChunkPreview) != 3 {
		t.Errorf("chunk_preview has %d entries, want 3", len(resp.ChunkPreview))
	}
	if st.Len() != resp.NumChunks {
		t.Errorf("store has %d records, want %d", st.Len(), resp.NumChunks)
	}
}

func TestUploadUnsupportedExtension(t *testing.T) {
	r, st := newTestRouter(&stubEmbedder{}, &stubCompleter{})

	body, contentType := multipartFile(t, "resume.docx", "content")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if st.Len() != 0 {
		t.Errorf("store has %d records, want 0", st.Len())
	}
}

func TestUploadMissingFile(t *testing.T) {
	r, _ := newTestRouter(&stubEmbedder{}, &stubCompleter{})

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUploadProviderFailure(t *testing.T) {
	r, st := newTestRouter(&stubEmbedder{err: errors.New("provider down")}, &stubCompleter{})

	body, contentType := multipartFile(t, "doc.txt", "some text")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if st.Len() != 0 {
		t.Errorf("store has %d records after failure, want 0", st.Len())
	}
}

func TestUploadStoreFailure(t *testing.T) {
	r := routerWithStore(&stubEmbedder{}, &stubCompleter{}, &brokenStore{err: errors.New("connection refused")})

	body, contentType := multipartFile(t, "doc.txt", "some text")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502 for store failure", w.Code)
	}
}

func TestAskStoreFailure(t *testing.T) {
	r := routerWithStore(&stubEmbedder{}, &stubCompleter{}, &brokenStore{err: errors.New("connection refused")})

	w := postForm(r, "/ask", url.Values{"query": {"question"}})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502 for store failure", w.Code)
	}
}

func TestUploadMissingCredential(t *testing.T) {
	r, _ := newTestRouter(&stubEmbedder{err: service.ErrMissingAPIKey}, &stubCompleter{})

	body, contentType := multipartFile(t, "doc.txt", "some text")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 for missing credential", w.Code)
	}
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAskReturnsAnswer(t *testing.T) {
	r, _ := newTestRouter(&stubEmbedder{}, &stubCompleter{answer: "the answer"})

	// Seed a document first so evidence is non-empty.
	body, contentType := multipartFile(t, "facts.txt", "5 years of experience in QA automation")
	up := httptest.NewRequest(http.MethodPost, "/upload", body)
	up.Header.Set("Content-Type", contentType)
	uw := httptest.NewRecorder()
	r.ServeHTTP(uw, up)
	if uw.Code != http.StatusOK {
		t.Fatalf("seed upload failed: %d %s", uw.Code, uw.Body.String())
	}

	w := postForm(r, "/ask", url.Values{"query": {"What are my skills?"}})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp AskResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Answer != "the answer" {
		t.Errorf("answer = %q", resp.Answer)
	}
	if len(resp.Evidence) != 1 || !strings.Contains(resp.Evidence[0], "QA automation") {
		t.Errorf("evidence = %v", resp.Evidence)
	}
	if !strings.Contains(resp.LLMContext, "What are my skills?") {
		t.Error("llm_context missing the question")
	}
	if resp.Message == "" {
		t.Error("message missing")
	}
}

func TestAskEmptyQuery(t *testing.T) {
	r, _ := newTestRouter(&stubEmbedder{}, &stubCompleter{})

	w := postForm(r, "/ask", url.Values{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAskEmptyStore(t *testing.T) {
	r, _ := newTestRouter(&stubEmbedder{}, &stubCompleter{answer: "I have no information."})

	w := postForm(r, "/ask", url.Values{"query": {"anything?"}})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp AskResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if len(resp.Evidence) != 0 {
		t.Errorf("evidence = %v, want empty", resp.Evidence)
	}
	if resp.Answer == "" {
		t.Error("expected an answer even with an empty store")
	}
}
