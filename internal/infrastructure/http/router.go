package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"taskboard/internal/infrastructure/http/handlers"
	"taskboard/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler     *handlers.AuthHandler
	ProjectsHandler *handlers.ProjectsHandler
	UsersHandler    *handlers.UsersHandler
	HealthHandler   *handlers.HealthHandler
	RequireJWT      func(http.Handler) http.Handler // JWT auth for mutating routes
	Log             zerolog.Logger
	Secure          func(http.Handler) http.Handler
	IPRateLimit     func(http.Handler) http.Handler
	CORS            func(http.Handler) http.Handler
	Metrics         bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	r.Use(chimid.AllowContentType("application/json"))
	r.Use(chimid.SetHeader("Content-Type", "application/json"))
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", cfg.AuthHandler.Signup)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/refresh", cfg.AuthHandler.Refresh)
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	if cfg.UsersHandler != nil && cfg.RequireJWT != nil {
		r.Route("/users", func(r chi.Router) {
			r.Use(cfg.RequireJWT)
			r.Get("/", cfg.UsersHandler.List)
			r.Get("/me", cfg.UsersHandler.Me)
		})
	}

	r.Route("/projects", func(r chi.Router) {
		// Reads are open.
		r.Get("/", cfg.ProjectsHandler.List)
		r.Get("/{id}", cfg.ProjectsHandler.Get)
		r.Get("/{id}/tasks", cfg.ProjectsHandler.ListTasks)
		r.Get("/{id}/tasks/{taskId}", cfg.ProjectsHandler.GetTask)

		// Writes require a logged-in user.
		r.Group(func(r chi.Router) {
			if cfg.RequireJWT != nil {
				r.Use(cfg.RequireJWT)
			}
			r.Post("/", cfg.ProjectsHandler.Create)
			r.Patch("/{id}", cfg.ProjectsHandler.Update)
			r.Delete("/{id}", cfg.ProjectsHandler.Delete)
			r.Post("/{id}/tasks", cfg.ProjectsHandler.CreateTask)
			r.Patch("/{id}/tasks/{taskId}", cfg.ProjectsHandler.UpdateTask)
			r.Delete("/{id}/tasks/{taskId}", cfg.ProjectsHandler.DeleteTask)
		})
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
