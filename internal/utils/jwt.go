package utils // package utils provides helpers for credential issuing and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated identity decoded from an access token.  It
// carries exactly what the authorization layer needs: who the caller is and
// whether they may perform admin operations.
type Principal struct {
	UserID  uint64
	IsAdmin bool
}

// ErrInvalidToken is returned by ParseAccessToken for any token that fails
// signature verification, uses an unexpected signing method, has expired, or
// carries malformed claims.  Callers do not need to distinguish further; all
// of these are the client's problem.
var ErrInvalidToken = errors.New("invalid access token")

// NewAccessToken builds and signs an HS256 JWT for a user.  The claims are
// subject (sub), is_admin, expiration (exp) and issued at (iat).  ttlMin
// controls the token lifetime in minutes.
func NewAccessToken(secret string, userID uint64, isAdmin bool, ttlMin int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      userID,
		"is_admin": isAdmin,
		"exp":      now.Add(time.Duration(ttlMin) * time.Minute).Unix(),
		"iat":      now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseAccessToken verifies a raw token string and extracts the principal.
// Only HMAC signing methods are accepted; anything else is rejected before
// the signature is checked.
func ParseAccessToken(secret, raw string) (Principal, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Principal{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, ErrInvalidToken
	}
	// numeric claims decode as float64 from JSON
	sub, ok := claims["sub"].(float64)
	if !ok || sub < 0 {
		return Principal{}, ErrInvalidToken
	}
	p := Principal{UserID: uint64(sub)}
	if admin, ok := claims["is_admin"].(bool); ok {
		p.IsAdmin = admin
	}
	return p, nil
}
