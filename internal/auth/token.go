// Package auth turns bearer credentials into an explicit Identity value that
// handlers thread into services, instead of every handler re-parsing headers.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Identity is the resolved caller of a request. The zero value means the
// bearer credential was missing or unusable.
type Identity struct {
	UserID int64
	Role   string
}

func (id Identity) Resolved() bool { return id.UserID > 0 }

// Sign issues an HS256 bearer token for a user.
func Sign(secret []byte, userID int64, role string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// Parse validates a bearer token and extracts the Identity. Expiry is
// distinguished from every other defect because the client reacts to it by
// clearing its session.
func Parse(secret []byte, raw string) (Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identity{}, ErrInvalidToken
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	uid, ok := claims["user_id"].(float64)
	if !ok || uid <= 0 {
		return Identity{}, ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	return Identity{UserID: int64(uid), Role: role}, nil
}

// FromHeader strips the Bearer prefix from an Authorization header value.
func FromHeader(header string) string {
	header = strings.TrimSpace(header)
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return header
}
