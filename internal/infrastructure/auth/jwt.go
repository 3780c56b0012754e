package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
)

const issuer = "spadepayits"

// jwtClaims é o payload assinado da credencial.
// Carrega o snapshot de identidade do momento do login; os valores de
// permissão NÃO fazem parte do token e são resolvidos a cada requisição.
type jwtClaims struct {
	Role               string `json:"role"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	MustChangePassword bool   `json:"mustChangePassword"`
	jwt.RegisteredClaims
}

// JWTService implementa ports.TokenService com HS256
type JWTService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService cria o emissor de credenciais.
// expiry define o tempo de vida fixo (7 dias no padrão do sistema).
func NewJWTService(secret string, expiry time.Duration) (*JWTService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if expiry <= 0 {
		return nil, errors.New("jwt expiry must be positive")
	}
	return &JWTService{secret: []byte(secret), expiry: expiry}, nil
}

// Issue assina uma nova credencial para a identidade
func (s *JWTService) Issue(claims ports.TokenClaims) (string, error) {
	if claims.UserID == "" {
		return "", errors.New("user id is required")
	}

	now := time.Now().UTC()
	payload := jwtClaims{
		Role:               claims.Role,
		Name:               claims.Name,
		Email:              claims.Email,
		MustChangePassword: claims.MustChangePassword,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return token.SignedString(s.secret)
}

// Verify valida assinatura e expiração, devolvendo o snapshot embutido
func (s *JWTService) Verify(token string) (*ports.TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ports.ErrTokenInvalid
	}

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ports.ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ports.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, ports.ErrTokenInvalid
	}
	if claims.Issuer != issuer || strings.TrimSpace(claims.Subject) == "" {
		return nil, ports.ErrTokenInvalid
	}

	return &ports.TokenClaims{
		UserID:             claims.Subject,
		Role:               claims.Role,
		Name:               claims.Name,
		Email:              claims.Email,
		MustChangePassword: claims.MustChangePassword,
	}, nil
}
