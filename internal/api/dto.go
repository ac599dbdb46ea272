package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/shaiso/liftsheet/internal/domain"
)

// Batch DTOs

// RowResponse — одна строка таблицы.
type RowResponse struct {
	Exercise string   `json:"exercise"`
	Sets     []string `json:"sets"`
	Note     string   `json:"note,omitempty"`
}

// TableResponse — таблица одной тренировки.
type TableResponse struct {
	Title      string        `json:"title"`
	Header     []string      `json:"header"`
	Rows       []RowResponse `json:"rows"`
	MaxSets    int           `json:"max_sets"`
	SourceFile string        `json:"source_file,omitempty"`
}

// BatchResponse — результат конвертации загрузки.
type BatchResponse struct {
	ID        uuid.UUID       `json:"id"`
	Tables    []TableResponse `json:"tables"`
	CreatedAt time.Time       `json:"created_at"`
}

// EnginesResponse — ответ со списком OCR-движков.
type EnginesResponse struct {
	Active    string   `json:"active"`
	Available []string `json:"available"`
}

// BatchFromDomain конвертирует domain.Batch в BatchResponse.
func BatchFromDomain(b *domain.Batch) BatchResponse {
	tables := make([]TableResponse, len(b.Tables))
	for i, t := range b.Tables {
		tables[i] = TableFromDomain(t)
	}
	return BatchResponse{
		ID:        b.ID,
		Tables:    tables,
		CreatedAt: b.CreatedAt,
	}
}

// TableFromDomain конвертирует domain.Table в TableResponse.
func TableFromDomain(t domain.Table) TableResponse {
	rows := make([]RowResponse, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = RowResponse{
			Exercise: r.Exercise,
			Sets:     r.Sets,
			Note:     r.Note,
		}
	}
	return TableResponse{
		Title:      t.Title,
		Header:     t.Header,
		Rows:       rows,
		MaxSets:    t.MaxSets,
		SourceFile: t.SourceFile,
	}
}
