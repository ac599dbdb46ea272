package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shaiso/liftsheet/internal/convert"
	"github.com/shaiso/liftsheet/internal/ocr"
)

// fakeEngine — OCR-движок для тестов: всегда возвращает один и тот же текст.
type fakeEngine struct {
	text string
	err  error
}

func (e *fakeEngine) Name() string { return "fake" }

func (e *fakeEngine) Recognize(context.Context, []byte) (string, error) {
	return e.text, e.err
}

func newTestServer(t *testing.T, engine ocr.Engine, maxUpload int64) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	registry := ocr.NewRegistry()
	registry.Register(engine)

	handler := NewHandler(Config{
		Service:        convert.NewService(engine, logger),
		Registry:       registry,
		MaxUploadBytes: maxUpload,
		Logger:         logger,
	})

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// multipartUpload собирает multipart тело с одним файлом в указанном поле.
func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write(content)
	writer.Close()

	return &body, writer.FormDataContentType()
}

func decodeErrorCode(t *testing.T, body io.Reader) string {
	t.Helper()

	var resp ErrorResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return string(resp.Error.Code)
}

func TestConvert_Workbook(t *testing.T) {
	engine := &fakeEngine{text: "Upper Body\n12 Mar\nBench: 10/8/6"}
	server := newTestServer(t, engine, 0)

	body, contentType := multipartUpload(t, "files[]", "log.jpg", []byte("fake image"))

	resp, err := http.Post(server.URL+"/api/v1/convert", contentType, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != workbookMIME {
		t.Errorf("unexpected content type: %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != `attachment; filename="workout.xlsx"` {
		t.Errorf("unexpected content disposition: %q", cd)
	}
	if resp.Header.Get("X-Batch-ID") == "" {
		t.Error("X-Batch-ID header missing")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	// Книга .xlsx — это zip-архив.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("body does not look like an xlsx workbook")
	}
}

func TestConvert_JSONFormat(t *testing.T) {
	engine := &fakeEngine{text: "Upper Body\n12 Mar\nBench: 10/8/6"}
	server := newTestServer(t, engine, 0)

	body, contentType := multipartUpload(t, "files[]", "log.jpg", []byte("fake image"))

	resp, err := http.Post(server.URL+"/api/v1/convert?format=json", contentType, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var wrapper struct {
		Data BatchResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(wrapper.Data.Tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(wrapper.Data.Tables))
	}

	table := wrapper.Data.Tables[0]
	if table.Title != "12 Mar - Upper Body" {
		t.Errorf("unexpected title: %q", table.Title)
	}
	if table.SourceFile != "log.jpg" {
		t.Errorf("unexpected source file: %q", table.SourceFile)
	}
}

func TestConvert_FilesFieldAlias(t *testing.T) {
	engine := &fakeEngine{text: "Legs\nSquat: 5/5"}
	server := newTestServer(t, engine, 0)

	body, contentType := multipartUpload(t, "files", "log.jpg", []byte("fake image"))

	resp, err := http.Post(server.URL+"/api/v1/convert", contentType, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestConvert_NoFiles(t *testing.T) {
	server := newTestServer(t, &fakeEngine{}, 0)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("unrelated", "value")
	writer.Close()

	resp, err := http.Post(server.URL+"/api/v1/convert", writer.FormDataContentType(), &body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if code := decodeErrorCode(t, resp.Body); code != "BAD_REQUEST" {
		t.Errorf("unexpected error code: %s", code)
	}
}

func TestConvert_NotMultipart(t *testing.T) {
	server := newTestServer(t, &fakeEngine{}, 0)

	resp, err := http.Post(server.URL+"/api/v1/convert", "text/plain", bytes.NewBufferString("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestConvert_TooLarge(t *testing.T) {
	server := newTestServer(t, &fakeEngine{}, 64)

	body, contentType := multipartUpload(t, "files[]", "big.jpg", bytes.Repeat([]byte("x"), 4096))

	resp, err := http.Post(server.URL+"/api/v1/convert", contentType, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.StatusCode)
	}
	if code := decodeErrorCode(t, resp.Body); code != "REQUEST_TOO_LARGE" {
		t.Errorf("unexpected error code: %s", code)
	}
}

func TestConvert_OCRFailure(t *testing.T) {
	engine := &fakeEngine{err: fmt.Errorf("%w: provider down", ocr.ErrRecognize)}
	server := newTestServer(t, engine, 0)

	body, contentType := multipartUpload(t, "files[]", "log.jpg", []byte("fake image"))

	resp, err := http.Post(server.URL+"/api/v1/convert", contentType, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
	if code := decodeErrorCode(t, resp.Body); code != "OCR_FAILED" {
		t.Errorf("unexpected error code: %s", code)
	}
}

func TestConvert_RootAlias(t *testing.T) {
	engine := &fakeEngine{text: "Legs\nSquat: 5/5"}
	server := newTestServer(t, engine, 0)

	body, contentType := multipartUpload(t, "files[]", "log.jpg", []byte("fake image"))

	resp, err := http.Post(server.URL+"/", contentType, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRoot_Message(t *testing.T) {
	server := newTestServer(t, &fakeEngine{}, 0)

	resp, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if origin := resp.Header.Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected CORS header, got %q", origin)
	}

	var msg map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if msg["message"] != "Upload your files" {
		t.Errorf("unexpected message: %q", msg["message"])
	}
}

func TestListEngines(t *testing.T) {
	server := newTestServer(t, &fakeEngine{}, 0)

	resp, err := http.Get(server.URL + "/api/v1/engines")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	var wrapper struct {
		Data EnginesResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if wrapper.Data.Active != "fake" {
		t.Errorf("unexpected active engine: %q", wrapper.Data.Active)
	}
	if len(wrapper.Data.Available) != 1 || wrapper.Data.Available[0] != "fake" {
		t.Errorf("unexpected engines: %v", wrapper.Data.Available)
	}
}

func TestPreflight(t *testing.T) {
	server := newTestServer(t, &fakeEngine{}, 0)

	req, _ := http.NewRequest(http.MethodOptions, server.URL+"/api/v1/convert", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if methods := resp.Header.Get("Access-Control-Allow-Methods"); methods == "" {
		t.Error("expected Access-Control-Allow-Methods header")
	}
}
