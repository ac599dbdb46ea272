package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/shaiso/liftsheet/internal/ocr"
)

// fakeEngine — OCR-движок для тестов: отдаёт заготовленный текст по имени файла.
type fakeEngine struct {
	texts map[string]string
	err   error
}

func (e *fakeEngine) Name() string { return "fake" }

func (e *fakeEngine) Recognize(_ context.Context, image []byte) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	return e.texts[string(image)], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestConvertBatch_Success(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{
		"img-1": "Upper Body\n12 Mar\nBench: 10/8/6",
		"img-2": "Legs\n14 Mar\nSquat: 5/5",
	}}
	service := NewService(engine, testLogger())

	batch, err := service.ConvertBatch(context.Background(), []File{
		{Name: "a.jpg", Data: []byte("img-1")},
		{Name: "b.jpg", Data: []byte("img-2")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch.Tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(batch.Tables))
	}

	first := batch.Tables[0]
	if first.SourceFile != "a.jpg" {
		t.Errorf("unexpected source file: %q", first.SourceFile)
	}
	if first.Title != "12 Mar - Upper Body" {
		t.Errorf("unexpected title: %q", first.Title)
	}
	if len(first.Rows) != 1 || first.Rows[0].Exercise != "Bench" {
		t.Errorf("unexpected rows: %+v", first.Rows)
	}

	if batch.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("batch ID should be assigned")
	}
}

func TestConvertBatch_NoFiles(t *testing.T) {
	service := NewService(&fakeEngine{}, testLogger())

	_, err := service.ConvertBatch(context.Background(), nil)
	if !errors.Is(err, ErrNoFiles) {
		t.Errorf("expected ErrNoFiles, got %v", err)
	}
}

func TestConvertBatch_OCRError(t *testing.T) {
	engine := &fakeEngine{err: fmt.Errorf("%w: boom", ocr.ErrRecognize)}
	service := NewService(engine, testLogger())

	_, err := service.ConvertBatch(context.Background(), []File{
		{Name: "a.jpg", Data: []byte("img")},
	})
	if !errors.Is(err, ocr.ErrRecognize) {
		t.Errorf("expected ErrRecognize, got %v", err)
	}
}

func TestConvertBatch_EmptyTextIsNotAnError(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{}}
	service := NewService(engine, testLogger())

	batch, err := service.ConvertBatch(context.Background(), []File{
		{Name: "blank.jpg", Data: []byte("img")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch.Tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(batch.Tables))
	}
	if !batch.Tables[0].Empty() {
		t.Error("expected empty table for blank image")
	}
	if batch.Tables[0].Title != "Unknown Date - Workout" {
		t.Errorf("unexpected fallback title: %q", batch.Tables[0].Title)
	}
}
