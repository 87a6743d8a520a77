package utils

import (
	"errors"
	"os"
	"time"

	"barberflow/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token with the given subject
// (tenant user ID) and tenant scope. The token expires after the
// specified duration.
func GenerateToken(subject string, tenantID int64, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      subject,
		"tenantId": tenantID,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractClaims extracts the subject and tenant scope from a valid token string.
func ExtractClaims(tokenString string) (string, int64, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", 0, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", 0, errors.New("token does not contain a valid 'sub' claim")
	}

	var tenantID int64
	if v, ok := claims["tenantId"].(float64); ok {
		tenantID = int64(v)
	}
	return sub, tenantID, nil
}
