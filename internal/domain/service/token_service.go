package service

import (
	"creatorhub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	AccountID int64              `json:"aid"`
	Kind      entity.AccountKind `json:"kind"`
	Type      string             `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access tokens.
// Token issuance belongs to the authentication service; this side mostly verifies.
type TokenService interface {
	// GenerateAccessToken creates an access token for the given account.
	GenerateAccessToken(accountID int64, kind entity.AccountKind) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
