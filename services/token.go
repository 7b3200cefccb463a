package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenIssuer = "cohabit"

var (
	JWTSecretKey      string
	JWTExpirationTime int64 // seconds

	ErrInvalidToken = errors.New("invalid or expired token")
)

// InitJWT loads the signing secret and expiry from the environment.
// Called once at startup, after the env has been loaded.
func InitJWT() {
	if os.Getenv("GO_ENV") == "test" {
		if os.Getenv("JWT_SECRET_KEY") == "" {
			os.Setenv("JWT_SECRET_KEY", "test_secret_key")
		}
		if os.Getenv("JWT_EXPIRATION_TIME") == "" {
			os.Setenv("JWT_EXPIRATION_TIME", "3600")
		}
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}

	expiration := os.Getenv("JWT_EXPIRATION_TIME")
	if expiration == "" {
		// the token contract is a fixed 1-hour expiry
		expiration = "3600"
	}

	if _, err := fmt.Sscanf(expiration, "%d", &JWTExpirationTime); err != nil {
		log.Fatal("Error parsing JWT expiration time")
	}
}

// GenerateToken issues a signed HS256 token carrying the user's id.
func GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iss":     TokenIssuer,
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(JWTExpirationTime) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken validates signature and expiry and returns the user id
// carried in the claims.
func VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	if iss, ok := claims["iss"].(string); ok && iss != TokenIssuer {
		return "", ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}

	return userID, nil
}

// TokenExpiry extracts the expiry claim without verifying the
// signature. Used to size revocation TTLs for tokens being retired.
func TokenExpiry(tokenString string) time.Time {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Now().Add(time.Duration(JWTExpirationTime) * time.Second)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Now().Add(time.Duration(JWTExpirationTime) * time.Second)
	}

	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(time.Duration(JWTExpirationTime) * time.Second)
}
