package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/config"
	"github.com/cictrix/hris-backend/handlers"
	"github.com/cictrix/hris-backend/middleware"
	"github.com/cictrix/hris-backend/repositories"
	"github.com/cictrix/hris-backend/repositories/supabase"
	"github.com/cictrix/hris-backend/services"
	"github.com/cictrix/hris-backend/token"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config   *config.Config
	Logger   *zap.Logger
	Supabase *supabase.Client

	// Repositories
	Applicants  repositories.ApplicantRepository
	Evaluations repositories.EvaluationRepository

	// Services
	ApplicantService  *services.ApplicantService
	EvaluationService *services.EvaluationService
	AuthService       *services.AuthService

	// Token codec and auth middleware
	TokenCodec     *token.Codec
	AuthMiddleware *middleware.AuthMiddleware

	// Handlers
	HealthHandler     *handlers.HealthHandler
	AuthHandler       *handlers.AuthHandler
	ApplicantHandler  *handlers.ApplicantHandler
	EvaluationHandler *handlers.EvaluationHandler
}

// NewDependencies creates and wires up all application dependencies
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initRowStore(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize row store: %w", err)
	}

	if err := deps.initTokenCodec(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}

	deps.initServices()
	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initRowStore connects the Supabase REST clients and the repositories
func (d *Dependencies) initRowStore(cfg *config.Config) error {
	client, err := supabase.NewClient(cfg.Supabase, d.Logger)
	if err != nil {
		return err
	}

	d.Supabase = client
	d.Applicants = supabase.NewApplicantRepository(client, d.Logger)
	d.Evaluations = supabase.NewEvaluationRepository(client, d.Logger)
	return nil
}

// initTokenCodec builds the token codec and the auth middleware around it
func (d *Dependencies) initTokenCodec(cfg *config.Config) error {
	codec, err := token.NewCodec(cfg.JWT)
	if err != nil {
		return err
	}

	d.TokenCodec = codec
	d.AuthMiddleware = middleware.NewAuthMiddleware(codec, d.Logger)
	return nil
}

func (d *Dependencies) initServices() {
	d.ApplicantService = services.NewApplicantService(d.Applicants, d.Logger)
	d.EvaluationService = services.NewEvaluationService(d.Evaluations, d.Logger)
	d.AuthService = services.NewAuthService(d.TokenCodec, d.Logger)
}

func (d *Dependencies) initHandlers() {
	d.HealthHandler = handlers.NewHealthHandler(d.Supabase, d.Logger)
	d.AuthHandler = handlers.NewAuthHandler(d.AuthService, d.Logger)
	d.ApplicantHandler = handlers.NewApplicantHandler(d.ApplicantService, d.Logger)
	d.EvaluationHandler = handlers.NewEvaluationHandler(d.EvaluationService, d.Logger)
}

// Close gracefully shuts down all dependencies. The REST clients hold no
// pooled connections, so only the logger needs flushing.
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	return nil
}
