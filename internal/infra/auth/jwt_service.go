package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tourbook/config"
	"tourbook/internal/domain/service"
	"tourbook/internal/errors"
)

// Timestamps are written with sub-second digits so a password change revokes tokens
// issued earlier in the same second. Decoding goes through float64, so ValidateToken
// rounds iat back to the millisecond.
func init() {
	jwt.TimePrecision = time.Microsecond
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing tokens.
	ttl    time.Duration // Time-to-live for tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := 90 * 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateToken signs an HS256 token for userID.
func (s *jwtService) GenerateToken(userID string) (string, error) {
	now := s.now().Truncate(time.Millisecond)
	claims := jwt.RegisteredClaims{
		Subject:   userID,                             // Subject (who the token is for)
		IssuedAt:  jwt.NewNumericDate(now),            // Issued At
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}

// ValidateToken checks the signature and expiry of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenInvalid
	}
	if claims.Subject == "" || claims.IssuedAt == nil {
		return nil, service.ErrTokenInvalid
	}

	return &service.Claims{
		UserID:    claims.Subject,
		IssuedAt:  claims.IssuedAt.Round(time.Millisecond),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// TokenTTL returns the configured lifetime of issued tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
