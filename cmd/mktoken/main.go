// Command mktoken issues signed development tokens until the login
// endpoint is backed by a real identity provider.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/config"
	"github.com/cictrix/hris-backend/models"
	"github.com/cictrix/hris-backend/services"
	"github.com/cictrix/hris-backend/token"
)

func main() {
	userID := flag.String("user-id", "", "subject user ID (defaults to a random UUID)")
	email := flag.String("email", "dev@example.com", "email claim")
	role := flag.String("role", string(models.RoleAdmin), "role claim (ADMIN, PM, RSP, LND, INTERVIEWER, RATER, APPLICANT)")
	hours := flag.Int("hours", 0, "token lifetime in hours (defaults to JWT_EXPIRATION_HOURS)")
	flag.Parse()

	_ = godotenv.Load(".env")

	cfg := config.JWTConfig{
		Secret:          os.Getenv("JWT_SECRET_KEY"),
		Algorithm:       envOrDefault("JWT_ALGORITHM", "HS256"),
		ExpirationHours: 24,
	}
	if *hours > 0 {
		cfg.ExpirationHours = *hours
	}
	if cfg.Secret == "" {
		fatal("JWT_SECRET_KEY is not set")
	}

	codec, err := token.NewCodec(cfg)
	if err != nil {
		fatal(err.Error())
	}

	if *userID == "" {
		*userID = uuid.NewString()
	}
	if !models.Role(*role).IsKnown() {
		fmt.Fprintf(os.Stderr, "warning: role %q is not a known role; the token will be rejected by every authorization check\n", *role)
	}

	svc := services.NewAuthService(codec, zap.NewNop())
	resp, err := svc.IssueToken(*userID, *email, models.Role(*role))
	if err != nil {
		fatal(err.Error())
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fatal(err.Error())
	}
	fmt.Println(string(out))
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, "mktoken: "+msg)
	os.Exit(1)
}
