package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sweetcrumb/bakeshop/internal/domain/model"
)

// JWTStrategy implements token creation/verification with HS256 signatures.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
}

type jwtClaims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed token embedding the user's identity and role.
func (s *JWTStrategy) IssueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates the signature and expiry and returns the claims.
func (s *JWTStrategy) ParseToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	role, ok := model.ParseRole(claims.Role)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: claims.UserID, Email: claims.Email, Role: role}, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
