package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ilomad/portfolio-assistant/internal/api"
	"github.com/ilomad/portfolio-assistant/internal/api/handlers"
	"github.com/ilomad/portfolio-assistant/internal/api/middleware"
)

type RouterConfig struct {
	ChatHandler *handlers.ChatHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 64 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/chat", cfg.ChatHandler.Chat)

	return r
}
