package api

import (
	"net/http"
)

// Root отвечает на корневой GET подсказкой для пользователя.
// GET /
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"message": "Upload your files"})
}

// ListEngines возвращает зарегистрированные OCR-движки и активный.
// GET /api/v1/engines
func (h *Handler) ListEngines(w http.ResponseWriter, _ *http.Request) {
	Success(w, EnginesResponse{
		Active:    h.service.EngineName(),
		Available: h.registry.Names(),
	})
}

// Preflight отвечает на CORS preflight. Заголовки ставит middleware.
// OPTIONS /...
func (h *Handler) Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
