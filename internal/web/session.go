package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/desertthunder/smm/internal/dashboard"
	"github.com/desertthunder/smm/internal/shared"
)

// SessionCookie is the name of the cookie carrying the session id.
const SessionCookie = "smm_session"

// DefaultSessionTTL is how long an idle session is kept.
const DefaultSessionTTL = 24 * time.Hour

// Session is one browser's draft plus a pending flash notice.
type Session struct {
	ID        string
	Dashboard *dashboard.Dashboard

	mu    sync.Mutex
	flash dashboard.Notice
}

// SetFlash stores n to be shown on the next page render.
func (s *Session) SetFlash(n dashboard.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = n
}

// TakeFlash returns the pending notice and clears it.
func (s *Session) TakeFlash() dashboard.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.flash
	s.flash = dashboard.Notice{}
	return n
}

type sessionEntry struct {
	session  *Session
	lastSeen time.Time
}

// SessionStore keeps sessions in memory, keyed by a uuid cookie.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	opts     dashboard.Options
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates a store whose new sessions get dashboards built with opts.
// A non-positive ttl uses [DefaultSessionTTL].
func NewSessionStore(opts dashboard.Options, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*sessionEntry),
		opts:     opts,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Session returns the session named by the request cookie, creating one (and setting the cookie)
// when the cookie is missing, unknown or expired.
func (st *SessionStore) Session(w http.ResponseWriter, r *http.Request) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	if c, err := r.Cookie(SessionCookie); err == nil {
		if e, ok := st.sessions[c.Value]; ok && now.Sub(e.lastSeen) <= st.ttl {
			e.lastSeen = now
			return e.session
		}
	}

	st.prune(now)

	s := &Session{ID: shared.GenerateID(), Dashboard: dashboard.New(st.opts)}
	st.sessions[s.ID] = &sessionEntry{session: s, lastSeen: now}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *SessionStore) prune(now time.Time) {
	for id, e := range st.sessions {
		if now.Sub(e.lastSeen) > st.ttl {
			delete(st.sessions, id)
		}
	}
}
