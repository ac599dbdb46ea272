package api

import (
	"net/http"
)

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Middleware chain
	chain := Chain(
		Recovery(h.logger),
		Logging(h.logger),
		CORS(),
	)

	// Конвертация
	mux.Handle("POST /api/v1/convert", chain(http.HandlerFunc(h.Convert)))
	mux.Handle("GET /api/v1/engines", chain(http.HandlerFunc(h.ListEngines)))

	// Корень: исторический интерфейс конвертера.
	mux.Handle("GET /{$}", chain(http.HandlerFunc(h.Root)))
	mux.Handle("POST /{$}", chain(http.HandlerFunc(h.Convert)))

	// CORS preflight для любых путей.
	mux.Handle("OPTIONS /", chain(http.HandlerFunc(h.Preflight)))
}
