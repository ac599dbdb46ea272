package api

import (
	"log/slog"

	"github.com/shaiso/liftsheet/internal/convert"
	"github.com/shaiso/liftsheet/internal/ocr"
)

// defaultMaxUploadBytes — лимит тела запроса, если не задан в конфигурации.
const defaultMaxUploadBytes = 10 << 20

// Handler — главный обработчик API с зависимостями.
type Handler struct {
	service        *convert.Service
	registry       *ocr.Registry
	maxUploadBytes int64
	logger         *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	Service        *convert.Service
	Registry       *ocr.Registry
	MaxUploadBytes int64
	Logger         *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	return &Handler{
		service:        cfg.Service,
		registry:       cfg.Registry,
		maxUploadBytes: maxUpload,
		logger:         cfg.Logger,
	}
}
