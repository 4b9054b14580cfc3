package token_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "six-cities"

// TokenService signs token records as HS256 JWTs. The record id travels
// as jti and the owner as sub, so a bearer string maps back to the record.
type TokenService struct {
	signingKey []byte
}

func NewTokenService(signingKey string) (*TokenService, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}
	return &TokenService{signingKey: []byte(signingKey)}, nil
}

func (s *TokenService) GenerateToken(ctx context.Context, token *domain.Token) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	serviceLogger := logger.WithFields(port.Fields{
		"component": "TokenService",
		"method":    "GenerateToken",
		"user_id":   token.UserID.String(),
		"token_id":  token.ID.String(),
	})

	claims := &jwt.RegisteredClaims{
		ID:        token.ID.String(),
		Subject:   token.UserID.String(),
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(token.CreatedAt),
		NotBefore: jwt.NewNumericDate(token.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(token.ExpiresAt),
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		serviceLogger.Error("Failed to sign token", err, nil)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	serviceLogger.Debug("Token generated successfully.", port.Fields{"expires_at": token.ExpiresAt.Format(time.RFC3339)})
	return signedToken, nil
}

func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	serviceLogger := logger.WithFields(port.Fields{
		"component": "TokenService",
		"method":    "ValidateToken",
	})

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			serviceLogger.Warn("Token has expired", port.Fields{"token_id": claims.ID})
		} else {
			serviceLogger.Warn("Invalid token format or signature", port.Fields{"reason": err.Error()})
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		serviceLogger.Warn("Token carries a malformed jti", port.Fields{"jti": claims.ID})
		return nil, domain.ErrTokenInvalid
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		serviceLogger.Warn("Token carries a malformed subject", port.Fields{"sub": claims.Subject})
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Claims{TokenID: tokenID, UserID: userID}, nil
}
