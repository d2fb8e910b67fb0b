package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ryft-xyz/ryft-indexer/internal/logger"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	APIKeys []string
}

// Authenticate validates the Authorization header against the configured
// API keys. The expected format is "ApiKey <key>".
func Authenticate(authHeader string, cfg AuthConfig) error {
	if authHeader == "" {
		return errors.New("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return errors.New("invalid Authorization header format")
	}

	authType := strings.ToLower(parts[0])
	if authType != "apikey" {
		return fmt.Errorf("unsupported authorization type: %s", authType)
	}

	return validateAPIKey(parts[1], cfg.APIKeys)
}

// Auth returns a gin middleware for API key authentication
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if err := Authenticate(authHeader, cfg); err != nil {
			logger.Warn("Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "unauthorized",
					"message": "Authentication failed",
				},
			})
			return
		}

		c.Next()
	}
}

// validateAPIKey validates an API key
func validateAPIKey(apiKey string, validKeys []string) error {
	if len(validKeys) == 0 {
		return errors.New("no API keys configured")
	}

	for _, key := range validKeys {
		if key != "" && key == apiKey {
			return nil
		}
	}

	return errors.New("invalid API key")
}
