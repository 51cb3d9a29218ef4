package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/moodgarden/backend/internal/ai"
	"github.com/moodgarden/backend/internal/api/handlers"
	"github.com/moodgarden/backend/internal/api/middleware"
	"github.com/moodgarden/backend/internal/config"
	"github.com/moodgarden/backend/internal/service"
)

func NewRouter(services *service.Services, aiClient ai.Client, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	flowerHandler := handlers.NewFlowerHandler(services.Flower)
	moodHandler := handlers.NewMoodHandler()
	aiHandler := handlers.NewAIHandler(aiClient)

	// Auth routes. /me verifies its own token so a deleted account can be
	// reported as 404 rather than the guard's blanket 401.
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Get("/me", authHandler.Me)
	})

	// Protected API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(services.Tokens))

		r.Route("/flowers", func(r chi.Router) {
			r.Get("/", flowerHandler.List)
			r.Post("/save", flowerHandler.Save)
		})

		r.Get("/mood-history", moodHandler.History)
		r.Get("/mood-stats", moodHandler.Stats)
	})

	// AI routes
	r.Route("/ai", func(r chi.Router) {
		r.Get("/ping", aiHandler.Ping)
		r.Post("/coach", aiHandler.Coach)
		r.Post("/summarize", aiHandler.Summarize)
	})

	return r
}
