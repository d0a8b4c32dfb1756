package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requiredEnv is the minimal set of variables Validate demands
var requiredEnv = map[string]string{
	"SUPABASE_URL":              "https://example.supabase.co",
	"SUPABASE_KEY":              "anon-key",
	"SUPABASE_SERVICE_ROLE_KEY": "service-key",
	"JWT_SECRET_KEY":            "test-secret",
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			wantErr: false,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "development", cfg.Environment)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8000, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "HS256", cfg.JWT.Algorithm)
				assert.Equal(t, 24, cfg.JWT.ExpirationHours)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "json", cfg.LogFormat)
				assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:5173")
			},
		},
		{
			name: "custom server and token configuration",
			envVars: map[string]string{
				"SERVER_PORT":          "9000",
				"JWT_EXPIRATION_HOURS": "8",
				"JWT_ALGORITHM":        "HS512",
				"LOG_FORMAT":           "text",
			},
			wantErr: false,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, 8, cfg.JWT.ExpirationHours)
				assert.Equal(t, "HS512", cfg.JWT.Algorithm)
				assert.Equal(t, 8*time.Hour, cfg.JWT.TokenTTL())
				assert.Equal(t, "text", cfg.LogFormat)
			},
		},
		{
			name: "PORT takes precedence over SERVER_PORT",
			envVars: map[string]string{
				"PORT":        "8080",
				"SERVER_PORT": "9000",
			},
			wantErr: false,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8080, cfg.Server.Port)
			},
		},
		{
			name: "custom CORS origins",
			envVars: map[string]string{
				"CORS_ALLOWED_ORIGINS": "https://hris.example.com, https://staging.example.com",
			},
			wantErr: false,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{
					"https://hris.example.com",
					"https://staging.example.com",
				}, cfg.CORS.AllowedOrigins)
			},
		},
		{
			name: "missing supabase url fails",
			envVars: map[string]string{
				"SUPABASE_URL": "-",
			},
			wantErr: true,
		},
		{
			name: "missing jwt secret fails",
			envVars: map[string]string{
				"JWT_SECRET_KEY": "-",
			},
			wantErr: true,
		},
		{
			name: "non-positive expiration fails",
			envVars: map[string]string{
				"JWT_EXPIRATION_HOURS": "0",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range requiredEnv {
				t.Setenv(k, v)
			}
			for k, v := range tt.envVars {
				if v == "-" {
					os.Unsetenv(k)
					continue
				}
				t.Setenv(k, v)
			}

			cfg, err := New()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 8000}
	assert.Equal(t, "127.0.0.1:8000", cfg.Address())
}

func TestSupabaseConfig_LogString(t *testing.T) {
	cfg := SupabaseConfig{URL: "https://example.supabase.co", AnonKey: "secret"}
	s := cfg.LogString()
	assert.Contains(t, s, "example.supabase.co")
	assert.NotContains(t, s, "secret")
}
