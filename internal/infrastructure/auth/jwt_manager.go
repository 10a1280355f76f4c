package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenUser is the identity payload embedded in every issued token and
// attached to the request context after verification.
type TokenUser struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
	Role string `json:"tipo"`
}

type Claims struct {
	Usuario TokenUser `json:"usuario"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secret []byte
	expiry time.Duration
}

func NewJWTManager(secret string, expirySeconds int64) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		expiry: time.Duration(expirySeconds) * time.Second,
	}
}

func (m *JWTManager) Sign(user TokenUser) (string, error) {
	now := time.Now()
	claims := Claims{
		Usuario: user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and checks the token, returning the embedded identity. The
// returned error keeps the library's reason (expired, bad signature) so the
// caller can relay it.
func (m *JWTManager) Verify(tokenString string) (*TokenUser, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return &claims.Usuario, nil
}
