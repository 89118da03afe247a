package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	sessionName = "wonderlust_session"
	userIDKey   = "userID"

	flashSuccess = "success"
	flashError   = "error"
)

// Manager wraps the cookie store. The session payload carries only the user
// ID hex plus any pending flash messages.
type Manager struct {
	store *sessions.CookieStore
	log   *zap.Logger
}

func NewManager(secret string, log *zap.Logger) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600 * 24 * 7, // one week
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, log: log}
}

// UserID returns the identity stored on the session, if any.
func (m *Manager) UserID(r *http.Request) (string, bool) {
	s, _ := m.store.Get(r, sessionName)
	id, ok := s.Values[userIDKey].(string)
	return id, ok && id != ""
}

// SetUserID establishes a session for the given identity.
func (m *Manager) SetUserID(w http.ResponseWriter, r *http.Request, id string) error {
	s, _ := m.store.Get(r, sessionName)
	s.Values[userIDKey] = id
	return s.Save(r, w)
}

// ClearUserID tears down the identity but keeps the session alive so a flash
// message set right after still reaches the next request.
func (m *Manager) ClearUserID(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, sessionName)
	delete(s.Values, userIDKey)
	return s.Save(r, w)
}

// Success queues a one-request success message.
func (m *Manager) Success(w http.ResponseWriter, r *http.Request, msg string) {
	m.addFlash(w, r, flashSuccess, msg)
}

// Error queues a one-request error message.
func (m *Manager) Error(w http.ResponseWriter, r *http.Request, msg string) {
	m.addFlash(w, r, flashError, msg)
}

func (m *Manager) addFlash(w http.ResponseWriter, r *http.Request, kind, msg string) {
	s, _ := m.store.Get(r, sessionName)
	s.AddFlash(msg, kind)
	if err := s.Save(r, w); err != nil {
		m.log.Error("flash message lost", zap.String("kind", kind), zap.Error(err))
	}
}

// Flashes pops all pending messages of both kinds.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) (success, errs []string) {
	s, _ := m.store.Get(r, sessionName)
	for _, f := range s.Flashes(flashSuccess) {
		if msg, ok := f.(string); ok {
			success = append(success, msg)
		}
	}
	for _, f := range s.Flashes(flashError) {
		if msg, ok := f.(string); ok {
			errs = append(errs, msg)
		}
	}
	if err := s.Save(r, w); err != nil {
		m.log.Error("flash messages not cleared", zap.Error(err))
	}
	return success, errs
}
