package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"finance-toolkit/domain"
	"finance-toolkit/repository"
)

type sessionIDKey struct{}

// SessionManager issues the session cookie and loads/saves the visitor's
// settings through a SessionRepository.
type SessionManager struct {
	repo       repository.SessionRepository
	cookieName string
	ttl        time.Duration
	log        zerolog.Logger
}

func NewSessionManager(
	repo repository.SessionRepository,
	cookieName string,
	ttl time.Duration,
	log zerolog.Logger,
) *SessionManager {
	return &SessionManager{repo: repo, cookieName: cookieName, ttl: ttl, log: log}
}

// Middleware makes sure every request carries a session id, minting a new
// one when the cookie is missing or malformed.
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(m.cookieName); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.NewString()
		}

		cookie := &http.Cookie{
			Name:     m.cookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
		if m.ttl > 0 {
			cookie.MaxAge = int(m.ttl / time.Second)
		}
		http.SetCookie(w, cookie)

		ctx := context.WithValue(r.Context(), sessionIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Load returns the stored settings for the request's session, or zero
// settings when there are none. Store failures are logged and treated as a
// fresh session.
func (m *SessionManager) Load(r *http.Request) (string, domain.Session) {
	id, _ := r.Context().Value(sessionIDKey{}).(string)
	if id == "" {
		return "", domain.Session{}
	}
	s, _, err := m.repo.Get(id)
	if err != nil {
		m.log.Warn().Err(err).Str("session", id).Msg("failed to load session")
		return id, domain.Session{}
	}
	return id, s
}

// Save stores s. Failures are logged and otherwise ignored: losing the
// settings only means the next render starts from defaults.
func (m *SessionManager) Save(id string, s domain.Session) {
	if id == "" {
		return
	}
	if err := m.repo.Set(id, s); err != nil {
		m.log.Warn().Err(err).Str("session", id).Msg("failed to save session")
	}
}
