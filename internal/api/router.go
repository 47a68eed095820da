package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eternaldle/eternaldle-go/internal/api/handler"
	apimiddleware "github.com/eternaldle/eternaldle-go/internal/api/middleware"
	"github.com/eternaldle/eternaldle-go/internal/middleware"
	"github.com/eternaldle/eternaldle-go/internal/services/game"
	"github.com/eternaldle/eternaldle-go/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	SessionService *session.Service
	GameController *game.Controller
	AllowedOrigins []string
	Cookies        apimiddleware.CookieConfig
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController)

	// Create middleware
	sessionMiddleware := apimiddleware.Session(cfg.SessionService, cfg.Cookies)
	corsMiddleware := apimiddleware.CORS(cfg.AllowedOrigins)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(corsMiddleware)

	// Game routes are session-scoped; the middleware mints a session
	// cookie on first contact
	gameRoutes := api.PathPrefix("/game").Subrouter()
	gameRoutes.Use(sessionMiddleware)
	gameRoutes.HandleFunc("/start", gameHandler.Start).Methods(http.MethodPost, http.MethodOptions)
	gameRoutes.HandleFunc("/guess", gameHandler.Guess).Methods(http.MethodPost, http.MethodOptions)

	// Health check endpoint (no session)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
