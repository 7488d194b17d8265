// Package session implements the cookie session: a signed HS256 token
// carrying the user id and role, set at login and cleared at logout.
package session

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie set on login.
const CookieName = "portal_session"

const sessionTTL = time.Hour * 24 * 7

// Claims is the authenticated state carried by a session.
type Claims struct {
	UserID uint
	Role   string
}

// Manager signs, verifies and clears session cookies.
type Manager struct {
	secret   []byte
	sameSite http.SameSite
	secure   bool
}

// NewManager builds a session manager. sameSite is the cookie attribute
// name as configured ("Lax", "Strict" or "None", case-insensitive).
func NewManager(secret, sameSite string, secure bool) *Manager {
	return &Manager{
		secret:   []byte(secret),
		sameSite: parseSameSite(sameSite),
		secure:   secure,
	}
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// Issue establishes a session for the user by setting a signed cookie.
func (m *Manager) Issue(c *gin.Context, userID uint, role string) error {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(sessionTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}

	c.SetSameSite(m.sameSite)
	c.SetCookie(CookieName, signed, int(sessionTTL.Seconds()), "/", "", m.secure, true)
	return nil
}

// Clear drops the session cookie unconditionally.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(m.sameSite)
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}

// FromRequest parses the session cookie. The second return is false for
// missing, malformed, expired or tampered cookies; the client is simply
// anonymous in all of those cases.
func (m *Manager) FromRequest(c *gin.Context) (Claims, bool) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return Claims{}, false
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, false
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, false
	}
	sub, ok := mapClaims["sub"].(float64)
	if !ok {
		return Claims{}, false
	}
	role, _ := mapClaims["role"].(string)

	return Claims{UserID: uint(sub), Role: role}, true
}
