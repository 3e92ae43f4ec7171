package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"medicore/config"

	"github.com/golang-jwt/jwt"
)

// AuthCachePrefix is the key prefix for cached auth token hashes in Redis.
const AuthCachePrefix = "auth:"

// AuthClaims carries the identity attributes embedded in a session token.
type AuthClaims struct {
	ID    string
	Name  string
	Email string
	Role  string
}

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "medicore-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token carrying the account's identity
// attributes. The token expires after the specified duration.
func GenerateToken(claims AuthClaims, duration time.Duration) (string, error) {
	mapClaims := jwt.MapClaims{
		"sub":   claims.ID,
		"name":  claims.Name,
		"email": claims.Email,
		"role":  claims.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
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

// ExtractClaimsFromToken validates a token string and returns the identity
// attributes embedded in it.
func ExtractClaimsFromToken(tokenString string) (*AuthClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ := mapClaims["role"].(string)
	name, _ := mapClaims["name"].(string)
	email, _ := mapClaims["email"].(string)

	return &AuthClaims{ID: sub, Name: name, Email: email, Role: role}, nil
}
