package authService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"file-catalog/internal/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTokenTTL = 3 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")

	ErrRevocationDisabled = errors.New("token revocation is not configured")
)

// Revocations is implemented by revokedRepo.RevokedRepo.
type Revocations interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Claims struct {
	jwt.RegisteredClaims
	Admin bool `json:"adm,omitempty"`
}

type AuthService struct {
	jwtSecretKey []byte
	ttl          time.Duration
	revoked      Revocations
	now          func() time.Time
}

// New builds the token service. revoked may be nil, which disables revocation.
func New(jwtSecret string, ttl time.Duration, revoked Revocations) *AuthService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{jwtSecretKey: []byte(jwtSecret), ttl: ttl, revoked: revoked, now: time.Now}
}

func (s *AuthService) IssueToken(userID string, admin bool) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("empty user id")
	}
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Admin: admin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.jwtSecretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenStr, nil
}

func (s *AuthService) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}

// Authenticate validates the token and returns the caller it was issued to.
func (s *AuthService) Authenticate(ctx context.Context, token string) (user.Principal, error) {
	claims, err := s.parse(token)
	if err != nil {
		return user.Principal{}, err
	}
	if s.revoked != nil && claims.ID != "" {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return user.Principal{}, fmt.Errorf("failed to check revocation: %w", err)
		}
		if revoked {
			return user.Principal{}, ErrTokenRevoked
		}
	}
	return user.Principal{UserID: claims.Subject, Admin: claims.Admin}, nil
}

// Revoke invalidates a token until its natural expiry.
func (s *AuthService) Revoke(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	if s.revoked == nil {
		return ErrRevocationDisabled
	}
	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
