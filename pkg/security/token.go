package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// ErrInvalidToken covers every verification failure: bad signature,
// expired, malformed or missing subject claim. Callers never learn which
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload both token kinds carry. Subject holds the
// username for access tokens and the email for verification tokens
type Claims struct {
	Subject string
	Role    string
}

// SessionSecret returns the secret access tokens are signed with
func SessionSecret() string {
	return viper.GetString("jwt.session_secret")
}

// VerificationSecret returns the secret email-verification tokens are
// signed with. Kept separate so the two token kinds can't be replayed
// against each other
func VerificationSecret() string {
	return viper.GetString("jwt.verification_secret")
}

func AccessTokenTTL() time.Duration {
	return time.Duration(viper.GetInt("jwt.access_ttl_minutes")) * time.Minute
}

func VerificationTokenTTL() time.Duration {
	return time.Duration(viper.GetInt("jwt.verification_ttl_minutes")) * time.Minute
}

// MakeAccessToken signs a session token embedding the username and role
func MakeAccessToken(username, role string, ttl time.Duration) (string, error) {
	return makeToken(jwt.MapClaims{
		"sub":  username,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}, SessionSecret())
}

// MakeVerificationToken signs an email-verification token embedding the
// address being proven
func MakeVerificationToken(email string, ttl time.Duration) (string, error) {
	return makeToken(jwt.MapClaims{
		"sub": email,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}, VerificationSecret())
}

func makeToken(c jwt.MapClaims, secret string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

// ParseToken decodes tokenStr and checks its signature and expiry
// against secret. Returns ErrInvalidToken on any failure
func ParseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}

	role, _ := claims["role"].(string)

	return &Claims{Subject: sub, Role: role}, nil
}
