package handlers

import (
	"net/http"
	"strings"

	"hotel-carbon-server/config"
	"hotel-carbon-server/internals"
)

var jwtSecret []byte

func InitAuth(cfg *config.Config) {
	jwtSecret = []byte(cfg.JWTSecret)
}

// authenticateRequest extracts the bearer token from the Authorization
// header and verifies it for the expected identity kind.
func authenticateRequest(r *http.Request, kind string) (internals.AccessTokenClaims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return internals.AccessTokenClaims{}, internals.ErrTokenMalformed
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return internals.AccessTokenClaims{}, internals.ErrTokenMalformed
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	return internals.VerifyAccessToken(jwtSecret, tokenString, kind)
}
