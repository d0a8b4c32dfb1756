package supabase

import (
	"context"
	"fmt"
	"strings"

	"github.com/supabase-community/postgrest-go"
	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/config"
)

// Client manages the two PostgREST clients against the hosted row store.
// The anon client carries the low-privilege key and serves the request
// path; the service client carries the elevated key and is reserved for
// admin operations and health probes.
type Client struct {
	anon    *postgrest.Client
	service *postgrest.Client
	logger  *zap.Logger
}

// NewClient creates a client manager from Supabase configuration
func NewClient(cfg config.SupabaseConfig, logger *zap.Logger) (*Client, error) {
	restURL := strings.TrimSuffix(cfg.URL, "/") + "/rest/v1"

	anon := postgrest.NewClient(restURL, "", map[string]string{
		"apikey":        cfg.AnonKey,
		"Authorization": "Bearer " + cfg.AnonKey,
	})
	if anon.ClientError != nil {
		return nil, fmt.Errorf("failed to create anon client: %w", anon.ClientError)
	}

	service := postgrest.NewClient(restURL, "", map[string]string{
		"apikey":        cfg.ServiceRoleKey,
		"Authorization": "Bearer " + cfg.ServiceRoleKey,
	})
	if service.ClientError != nil {
		return nil, fmt.Errorf("failed to create service client: %w", service.ClientError)
	}

	logger.Info("row store clients initialized", zap.String("supabase", cfg.LogString()))

	return &Client{
		anon:    anon,
		service: service,
		logger:  logger,
	}, nil
}

// Anon returns the low-privilege client used on the request path
func (c *Client) Anon() *postgrest.Client {
	return c.anon
}

// Service returns the elevated client for admin operations
func (c *Client) Service() *postgrest.Client {
	return c.service
}

// HealthCheck verifies row-store reachability. It goes through the service
// client so readiness does not depend on row-level security policies.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, _, err := c.service.From("applicants").
		Select("id", "exact", true).
		Limit(1, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return fmt.Errorf("row store health check failed: %w", err)
	}
	return nil
}
