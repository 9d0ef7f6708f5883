package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/estebanmar24/Software-Tablets-sub001/config"
)

var (
	ErrTokenExpirado = errors.New("token expirado")
	ErrTokenInvalido = errors.New("token inválido")
)

// Claims declaraciones del token de sesión de tablet.
// SesionID identifica la sesión de kiosco y sirve de clave para el estado
// del cronómetro en Redis; cada tablet abierta es una sesión independiente.
type Claims struct {
	SesionID   string `json:"sesion_id"`
	OperadorID string `json:"operador_id"`
	jwtv5.RegisteredClaims
}

// Manager gestor de tokens de sesión
type Manager struct {
	secret []byte
	ttl    time.Duration
	emisor string
}

// NewManager crea el gestor de tokens
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.SesionTTL,
		emisor: cfg.Emisor,
	}
}

// GenerarTokenSesion emite un token para una nueva sesión de tablet.
// Devuelve el token firmado y el id de sesión generado.
func (m *Manager) GenerarTokenSesion(operadorID string) (string, string, error) {
	sesionID := uuid.New().String()
	now := time.Now()
	claims := Claims{
		SesionID:   sesionID,
		OperadorID: operadorID,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
			Issuer:    m.emisor,
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", "", err
	}
	return signed, sesionID, nil
}

// ParseToken valida y extrae las declaraciones de un token
func (m *Manager) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpirado
		}
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}
