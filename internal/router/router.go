package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/skabbuzaid/AiBackend/internal/chat"
	"github.com/skabbuzaid/AiBackend/internal/companion"
	"github.com/skabbuzaid/AiBackend/internal/config"
	"github.com/skabbuzaid/AiBackend/internal/flashcard"
	"github.com/skabbuzaid/AiBackend/internal/middlewares"
	"github.com/skabbuzaid/AiBackend/internal/progress"
	"github.com/skabbuzaid/AiBackend/internal/quiz"
	"github.com/skabbuzaid/AiBackend/internal/session"
)

type RouterConfig struct {
	ChatHandler      *chat.Handler
	QuizHandler      *quiz.Handler
	FlashcardHandler *flashcard.Handler
	ProgressHandler  *progress.Handler
	CompanionHandler *companion.Handler
	SessionHandler   *session.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)
		r.Post("/session", cfg.SessionHandler.Create)

		r.Mount("/chat", chat.Routes(cfg.ChatHandler))
		r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
		r.Mount("/flashcards", flashcard.Routes(cfg.FlashcardHandler))
		r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
		r.Mount("/companion", companion.Routes(cfg.CompanionHandler))
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
