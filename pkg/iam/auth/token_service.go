package auth

import (
	"errors"
	"time"

	"github.com/Abraxas-365/campus/pkg/errx"
	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

const DefaultAccessTokenTTL = 24 * time.Hour

type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, role Role) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// TokenClaims is what a validated access token asserts.
// The role is informational: the user record stays authoritative.
type TokenClaims struct {
	UserID    kernel.UserID
	Role      Role
	ExpiresAt time.Time
}

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and validates HS256 access tokens
type JWTService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret, issuer string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &JWTService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *JWTService) GenerateAccessToken(userID kernel.UserID, role Role) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrRegistry.New(CodeMissingSecret)
	}

	now := s.now()
	claims := accessClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign access token", errx.TypeInternal)
	}
	return token, nil
}

func (s *JWTService) ValidateAccessToken(token string) (*TokenClaims, error) {
	if len(s.secret) == 0 {
		return nil, ErrRegistry.New(CodeMissingSecret)
	}

	var claims accessClaims
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		reason := "malformed"
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = "expired"
		}
		return nil, ErrInvalidToken().WithCause(err).WithDetail("reason", reason)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken().WithDetail("reason", "missing subject")
	}

	out := &TokenClaims{
		UserID: kernel.UserID(claims.Subject),
		Role:   Role(claims.Role),
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
