package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cictrix/hris-backend/app"
	"github.com/cictrix/hris-backend/models"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Service banner and health probes
	r.Get("/", deps.HealthHandler.HandleRoot)
	r.Get("/health", deps.HealthHandler.HandleHealth)
	r.Get("/health/ready", deps.HealthHandler.HandleReadiness)

	// Auth endpoints. These are deliberately outside the auth middleware:
	// login is a stub until Supabase Auth is wired up, and /me has no
	// principal to resolve without it.
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", deps.AuthHandler.HandleLogin)
		r.Post("/logout", deps.AuthHandler.HandleLogout)
		r.Get("/me", deps.AuthHandler.HandleMe)
	})

	// Applicant management
	r.Route("/api/applicants", func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)
		r.Get("/", deps.ApplicantHandler.HandleList)
		r.Get("/{id}", deps.ApplicantHandler.HandleGet)
		r.With(deps.AuthMiddleware.RequireRole(
			models.RoleAdmin, models.RolePM, models.RoleRSP, models.RoleLND,
		)).Put("/{id}", deps.ApplicantHandler.HandleUpdate)
	})

	// Evaluations
	r.Route("/api/evaluations", func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)
		r.With(deps.AuthMiddleware.RequireRole(
			models.RoleAdmin, models.RolePM, models.RoleRSP, models.RoleLND, models.RoleRater,
		)).Get("/", deps.EvaluationHandler.HandleList)
		r.With(deps.AuthMiddleware.RequireRole(
			models.RoleRater, models.RoleInterviewer,
		)).Post("/", deps.EvaluationHandler.HandleCreate)
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"endpoint not found"}`))
	})

	return r
}
