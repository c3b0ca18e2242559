// Package api serves the account, catalog and score endpoints over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/RohitDatta06/gamehub/internal/auth"
	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/storage"
)

// Server handles HTTP requests.
type Server struct {
	store    *storage.Store
	issuer   *auth.Issuer
	cfg      config.APIConfig
	catalog  []storage.Game
	logger   *log.Logger
	validate *validator.Validate
}

// NewServer creates a new API server. catalog is what POST /games/seed
// inserts.
func NewServer(store *storage.Store, issuer *auth.Issuer, cfg config.APIConfig, catalog []storage.Game, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:    store,
		issuer:   issuer,
		cfg:      cfg,
		catalog:  catalog,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(s.corsHandler())

	authLimit := s.limiter(s.cfg.AuthLimit, "Too many requests")
	scoreLimit := s.limiter(s.cfg.ScoreLimit, "Too many score submissions")

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/auth", func(r chi.Router) {
			r.With(authLimit).Post("/register", s.handleRegister)
			r.With(authLimit).Post("/login", s.handleLogin)
			r.Post("/refresh", s.handleRefresh)
			r.Post("/logout", s.handleLogout)
			r.With(s.authenticate).Get("/me", s.handleMe)
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", s.handleListGames)
			r.Post("/seed", s.handleSeedGames)
			r.Get("/{slug}", s.handleGetGame)
		})

		r.Route("/scores", func(r chi.Router) {
			r.With(s.authenticate).Get("/stats/me", s.handleMyStats)
			r.With(s.authenticate).Get("/me/{slug}", s.handleMyScores)
			r.Get("/{slug}/leaderboard", s.handleLeaderboard)
			r.With(s.authenticate, scoreLimit).Post("/{slug}", s.handleSubmitScore)
		})
	})

	return r
}

// requestLogger logs each completed request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// corsHandler allows the configured browser origin, with credentials for the
// refresh cookie. No origin configured means no cross-origin access.
func (s *Server) corsHandler() func(http.Handler) http.Handler {
	if s.cfg.CORSOrigin == "" {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.cfg.CORSOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// limiter caps requests per client IP. A zero budget disables the limit.
func (s *Server) limiter(rl config.RateLimit, message string) func(http.Handler) http.Handler {
	if rl.Requests <= 0 || rl.Window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(rl.Requests, rl.Window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusTooManyRequests, CodeRateLimit, message)
		}),
	)
}

type ctxKey int

const userIDKey ctxKey = iota

// authenticate requires a valid bearer access token.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		const prefix = "Bearer "
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			writeError(w, http.StatusUnauthorized, CodeNoToken, "No token provided")
			return
		}
		userID, err := s.issuer.Verify(header[len(prefix):], auth.Access)
		if err != nil {
			writeError(w, http.StatusUnauthorized, CodeInvalidToken, "Invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

func userID(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, CodeInternal, "database unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
