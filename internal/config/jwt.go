package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// defaultTokenHours is the bearer token lifetime when JWT_EXPIRATION_HOURS
// is not set.
const defaultTokenHours = 24

// JWTConfig holds the signing secret and lifetime for the portal's bearer
// tokens. Tokens are minted by the token command and checked by the API
// server; both sides share this config.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig builds the token config from the environment. JWT_SECRET must
// be set; JWT_EXPIRATION_HOURS is optional and must be a positive integer.
func NewJWTConfig() (*JWTConfig, error) {
	cfg := &JWTConfig{
		Secret:          os.Getenv("JWT_SECRET"),
		ExpirationHours: defaultTokenHours,
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("token auth needs JWT_SECRET in the environment")
	}

	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JWT_EXPIRATION_HOURS %q: %w", raw, err)
		}
		cfg.ExpirationHours = hours
	}
	if cfg.ExpirationHours < 1 {
		return nil, fmt.Errorf("token lifetime must be at least one hour, got %d", cfg.ExpirationHours)
	}

	return cfg, nil
}

// TokenTTL returns the configured token lifetime.
func (c *JWTConfig) TokenTTL() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}
