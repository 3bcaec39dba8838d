package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos que emite el servicio de pedidos.
// El terminal no conoce el secret del servicio: solo inspecciona los claims sin verificar
// la firma, para decidir si un token cacheado sigue siendo utilizable.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // "admin" | "bartender" | "trial"
}

// Peek decodifica los claims de un token sin verificar la firma.
// Retorna error solo si el token está malformado.
func Peek(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("token malformado: %w", err)
	}
	return claims, nil
}

// Expired informa si un token cacheado ya venció. Un token malformado o sin
// claim de expiración se considera vencido: no vale la pena restaurar con él.
func Expired(tokenString string, now time.Time) bool {
	claims, err := Peek(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Before(now)
}

// Generate genera un token HS256 con los claims del terminal. Se usa para el rol
// trial (modo demo sin backend) y en tests.
func Generate(secret string, userID int64, username, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:   userID,
		Username: username,
		Role:     role,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}
