package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cictrix/hris-backend/config"
	"github.com/cictrix/hris-backend/models"
)

// ErrInvalidToken is returned for every parse failure: bad signature,
// malformed structure, missing claims, or expiry. Callers get a single
// failure kind so validation internals don't leak to clients.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the token claims carried by every credential issued or
// accepted by this server.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and parses signed bearer tokens. It is a pure function of
// its inputs plus the signing configuration captured at construction.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewCodec creates a Codec from JWT configuration. Only HMAC signing
// methods are accepted; the secret is held process-wide and never rotated
// at runtime.
func NewCodec(cfg config.JWTConfig) (*Codec, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm: %s", cfg.Algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %s is not HMAC-based", cfg.Algorithm)
	}

	return &Codec{
		secret: []byte(cfg.Secret),
		method: method,
		ttl:    cfg.TokenTTL(),
	}, nil
}

// Issue creates a signed token for the given identity. When ttl is omitted
// the configured lifetime applies.
func (c *Codec) Issue(userID, email, role string, ttl ...time.Duration) (string, error) {
	if userID == "" || email == "" || role == "" {
		return "", fmt.Errorf("user id, email and role are required")
	}

	lifetime := c.ttl
	if len(ttl) > 0 {
		lifetime = ttl[0]
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a token string and returns its claims. The signature must
// verify under the configured key and method, the token must not be expired,
// and the three identity claims must all be present. Role values are not
// checked against the enumerated set here; unknown roles are denied at
// authorization time instead.
func (c *Codec) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{c.method.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.UserID == "" || claims.Email == "" || claims.Role == "" {
		return nil, fmt.Errorf("%w: missing identity claims", ErrInvalidToken)
	}

	return claims, nil
}

// ValidateToken implements the middleware.TokenValidator interface by
// resolving a raw credential into a Principal.
func (c *Codec) ValidateToken(_ context.Context, tokenString string) (*models.Principal, error) {
	claims, err := c.Parse(tokenString)
	if err != nil {
		return nil, err
	}
	return &models.Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   models.Role(claims.Role),
	}, nil
}
