package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any malformed, expired or mis-signed token.
// Verification failures are deliberately indistinguishable to the caller.
var ErrInvalidToken = errors.New("invalid token")

// refreshTokenTTL is fixed; access token TTL is configurable.
const refreshTokenTTL = 30 * 24 * time.Hour

const refreshTokenType = "refresh"

// TokenPair holds a freshly issued access + refresh token
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService issues and verifies signed session tokens
type TokenService interface {
	Issue(userID uint) (*TokenPair, error)
	IssueAccessToken(userID uint) (string, error)
	Verify(token string) (uint, error)
	VerifyRefresh(token string) (uint, error)
}

type tokenClaims struct {
	UserID uint   `json:"userId"`
	Type   string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// tokenService implements TokenService on HS256 JWTs
type tokenService struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewTokenService creates a new instance of TokenService
func NewTokenService(secret string, accessTTL time.Duration) TokenService {
	return &tokenService{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// Issue creates an access + refresh token pair for a user
func (s *tokenService) Issue(userID uint) (*TokenPair, error) {
	accessToken, err := s.IssueAccessToken(userID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.sign(tokenClaims{
		UserID: userID,
		Type:   refreshTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(s.now().Add(refreshTokenTTL)),
		},
	})
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// IssueAccessToken creates a short-lived access token for a user
func (s *tokenService) IssueAccessToken(userID uint) (string, error) {
	return s.sign(tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.accessTTL)),
		},
	})
}

// Verify checks signature and expiry and returns the embedded user id
func (s *tokenService) Verify(token string) (uint, error) {
	claims, err := s.parse(token)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

// VerifyRefresh verifies a token and additionally requires the refresh type tag
func (s *tokenService) VerifyRefresh(token string) (uint, error) {
	claims, err := s.parse(token)
	if err != nil || claims.Type != refreshTokenType {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

func (s *tokenService) sign(claims tokenClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *tokenService) parse(token string) (*tokenClaims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
