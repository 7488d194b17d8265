package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func issueCookie(t *testing.T, m *Manager, userID uint, role string) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	require.NoError(t, m.Issue(c, userID, role))

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == CookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func contextWithCookie(cookie *http.Cookie) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		c.Request.AddCookie(cookie)
	}
	return c
}

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("secret", "Lax", false)

	cookie := issueCookie(t, m, 7, "admin")
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	claims, ok := m.FromRequest(contextWithCookie(cookie))
	require.True(t, ok)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestManager_MissingCookieIsAnonymous(t *testing.T) {
	m := NewManager("secret", "Lax", false)

	_, ok := m.FromRequest(contextWithCookie(nil))
	assert.False(t, ok)
}

func TestManager_RejectsTamperedAndForeignTokens(t *testing.T) {
	m := NewManager("secret", "Lax", false)
	other := NewManager("other-secret", "Lax", false)

	cookie := issueCookie(t, m, 3, "user")

	// Signed with a different secret
	_, ok := other.FromRequest(contextWithCookie(cookie))
	assert.False(t, ok)

	// Tampered payload
	tampered := *cookie
	tampered.Value = cookie.Value + "x"
	_, ok = m.FromRequest(contextWithCookie(&tampered))
	assert.False(t, ok)
}

func TestManager_ClearExpiresCookie(t *testing.T) {
	m := NewManager("secret", "Strict", true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	m.Clear(c)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
