// Package auth validates session tokens and exposes the caller's Identity.
package auth

import (
	"errors"
	"strings"
	"time"

	"party-ledger/core/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the value object describing an authenticated caller. It is
// resolved once per request by the middleware and passed to handlers via
// locals.
type Identity struct {
	AccountID uint   `json:"account_id"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
}

// localsKey is where the middleware stores the resolved Identity.
const localsKey = "identity"

// claims is the JWT claims layout for session tokens.
type claims struct {
	jwt.RegisteredClaims
	AccountID uint   `json:"account_id"`
	Username  string `json:"username"`
	Admin     bool   `json:"admin"`
}

// Config configures the auth middleware.
type Config struct {
	// Secret is the HMAC key session tokens are signed with.
	Secret string
	// Next skips the middleware for matching requests (e.g. the login
	// route).
	Next func(c *fiber.Ctx) bool
}

// NewToken mints a signed session token for id, valid for ttl.
func NewToken(secret string, ttl time.Duration, id Identity) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		AccountID: id.AccountID,
		Username:  id.Username,
		Admin:     id.IsAdmin,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// ParseToken validates a session token and returns the Identity it carries.
func ParseToken(secret, token string) (Identity, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, apperr.Wrap(apperr.ErrUnauthenticated, err)
	}
	return Identity{AccountID: c.AccountID, Username: c.Username, IsAdmin: c.Admin}, nil
}

// New returns a middleware that requires a valid bearer token. The token
// is read from the Authorization header, or from the "token" query
// parameter for clients that cannot set headers (websocket upgrades).
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		token := bearerToken(c)
		if token == "" {
			return apperr.Respond(c, apperr.ErrUnauthenticated)
		}

		id, err := ParseToken(cfg.Secret, token)
		if err != nil {
			return apperr.Respond(c, err)
		}

		c.Locals(localsKey, id)
		return c.Next()
	}
}

// RequireAdmin returns a middleware rejecting callers without the
// game-master flag. It must run after New.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := FromContext(c)
		if !ok {
			return apperr.Respond(c, apperr.ErrUnauthenticated)
		}
		if !id.IsAdmin {
			return apperr.Respond(c, apperr.ErrForbidden)
		}
		return c.Next()
	}
}

// FromContext extracts the Identity resolved by the middleware.
func FromContext(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(localsKey).(Identity)
	return id, ok
}

// SetIdentity stores an Identity in locals. Exported for tests that
// exercise handlers without the full middleware chain.
func SetIdentity(c *fiber.Ctx, id Identity) {
	c.Locals(localsKey, id)
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}
	return c.Query("token")
}
