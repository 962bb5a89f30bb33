package app

import (
	"github.com/avc/cargo-office/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps, logger)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5, "application/json"))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, logger *zap.Logger) {
	h := deps.handlers

	// Health check эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)

	// Публичные эндпоинты
	r.Post("/auth/login", h.auth.Login)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.jwtManager, deps.sessions, logger))

		r.Post("/auth/logout", h.auth.Logout)
		r.Get("/auth/session", h.auth.Session)

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/dashboard/tabs", h.dashboard.Tabs)

			r.Route("/periods", func(r chi.Router) {
				r.Get("/", h.periods.ListPeriods)
				r.Post("/", h.periods.CreatePeriod)
				r.Get("/{id}", h.periods.GetPeriod)
				r.Put("/{id}", h.periods.UpdatePeriod)
				r.Delete("/{id}", h.periods.DeletePeriod)
			})

			r.Route("/cargo", func(r chi.Router) {
				r.Get("/", h.cargo.ListRows)
				r.Get("/columns", h.cargo.Columns)
				r.Get("/export", h.cargo.Export)
				r.Post("/rows", h.cargo.InsertRow)
				r.Patch("/rows/{rowID}", h.cargo.EditRow)
				r.Delete("/rows/{rowID}", h.cargo.DeleteRow)
				r.Post("/upload", h.upload.Upload)
			})
		})
	})
}
