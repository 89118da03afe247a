package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/navneetmaurya-hub/WonderLust/internal/session"
)

// carry copies the cookies set on w onto a fresh request, simulating the
// browser's next visit. Like a browser, the last Set-Cookie for a name wins.
func carry(w *httptest.ResponseRecorder) *http.Request {
	latest := make(map[string]*http.Cookie)
	var names []string
	for _, c := range w.Result().Cookies() {
		if _, seen := latest[c.Name]; !seen {
			names = append(names, c.Name)
		}
		latest[c.Name] = c
	}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, name := range names {
		r.AddCookie(latest[name])
	}
	return r
}

func TestUserIDRoundTrip(t *testing.T) {
	m := session.NewManager("test-secret", zap.NewNop())

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := m.UserID(r)
	assert.False(t, ok)

	w := httptest.NewRecorder()
	require.NoError(t, m.SetUserID(w, r, "abc123"))

	id, ok := m.UserID(carry(w))
	assert.True(t, ok)
	assert.Equal(t, "abc123", id)
}

func TestClearUserID(t *testing.T) {
	m := session.NewManager("test-secret", zap.NewNop())

	w := httptest.NewRecorder()
	require.NoError(t, m.SetUserID(w, httptest.NewRequest(http.MethodGet, "/", nil), "abc123"))

	r := carry(w)
	w2 := httptest.NewRecorder()
	require.NoError(t, m.ClearUserID(w2, r))

	_, ok := m.UserID(carry(w2))
	assert.False(t, ok)
}

func TestFlashesAreOneRequestLived(t *testing.T) {
	m := session.NewManager("test-secret", zap.NewNop())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	m.Success(w, r, "Welcome back!")
	m.Error(w, r, "something failed")

	w2 := httptest.NewRecorder()
	success, errs := m.Flashes(w2, carry(w))
	assert.Equal(t, []string{"Welcome back!"}, success)
	assert.Equal(t, []string{"something failed"}, errs)

	// Popped: the next request sees nothing.
	w3 := httptest.NewRecorder()
	success, errs = m.Flashes(w3, carry(w2))
	assert.Empty(t, success)
	assert.Empty(t, errs)
}

func TestClearKeepsPendingFlashes(t *testing.T) {
	m := session.NewManager("test-secret", zap.NewNop())

	w := httptest.NewRecorder()
	require.NoError(t, m.SetUserID(w, httptest.NewRequest(http.MethodGet, "/", nil), "abc123"))

	// Logout flow: clear the identity, then flash a goodbye.
	r := carry(w)
	w2 := httptest.NewRecorder()
	require.NoError(t, m.ClearUserID(w2, r))
	m.Success(w2, r, "Logged out successfully!")

	w3 := httptest.NewRecorder()
	success, _ := m.Flashes(w3, carry(w2))
	assert.Equal(t, []string{"Logged out successfully!"}, success)
}
