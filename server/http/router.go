package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"smartcart-service/internal/config"
	"smartcart-service/internal/middleware"
	recHnd "smartcart-service/internal/recommend/handler"
	"smartcart-service/internal/store"
	"smartcart-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, st *store.ArtifactStore) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	r.Post("/model/build", recHnd.Build(cfg, logger, st))
	r.Post("/recommend", recHnd.Recommend(cfg, logger, st))
	r.Post("/batch", recHnd.Batch(cfg, logger, st))

	return r
}
