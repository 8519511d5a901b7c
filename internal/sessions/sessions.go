// Package sessions keeps one in-memory workspace per browser, keyed by a
// random cookie. Sessions expire after a period of inactivity and are never
// written to disk.
package sessions

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/mentor/internal/identify"
	"github.com/JaimeStill/mentor/internal/theme"
	"github.com/JaimeStill/mentor/pkg/lifecycle"
)

// Session is one browser's state.
type Session struct {
	ID        string
	Workspace *identify.Workspace

	mu    sync.Mutex
	theme theme.Theme
}

// Theme returns the session's display theme.
func (s *Session) Theme() theme.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme flips the theme and returns the new value.
func (s *Session) ToggleTheme() theme.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = s.theme.Toggle()
	return s.theme
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Store holds live sessions.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry

	ttl    time.Duration
	sweep  time.Duration
	max    int
	cookie string
	secure bool
	logger *slog.Logger
}

// New creates an empty Store from a finalized Config.
func New(cfg *Config, logger *slog.Logger) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      cfg.TTLDuration(),
		sweep:    cfg.SweepIntervalDuration(),
		max:      cfg.MaxSessions,
		cookie:   cfg.CookieName,
		secure:   cfg.Secure,
		logger:   logger.With("system", "sessions"),
	}
}

// Start registers the expiry sweeper with the lifecycle coordinator.
func (s *Store) Start(lc *lifecycle.Coordinator) {
	s.logger.Info("starting session sweeper", "ttl", s.ttl, "interval", s.sweep)

	lc.Every(s.sweep, func(ctx context.Context) {
		if n := s.Sweep(); n > 0 {
			s.logger.Info("expired sessions evicted", "count", n, "remaining", s.Len())
		}
	})
}

// Create starts a new session. When the store is at capacity the least
// recently seen session is evicted first. A capacity of zero is unbounded.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		Workspace: identify.NewWorkspace(),
		theme:     theme.Default,
	}

	s.mu.Lock()
	if s.max > 0 && len(s.sessions) >= s.max {
		s.evictOldest()
	}
	s.sessions[sess.ID] = &entry{session: sess, lastSeen: time.Now()}
	s.mu.Unlock()

	return sess
}

// evictOldest must be called with s.mu held.
func (s *Store) evictOldest() {
	var (
		oldest string
		seen   time.Time
	)
	for id, e := range s.sessions {
		if oldest == "" || e.lastSeen.Before(seen) {
			oldest, seen = id, e.lastSeen
		}
	}
	if oldest != "" {
		delete(s.sessions, oldest)
		s.logger.Debug("session evicted at capacity", "max", s.max)
	}
}

// Get returns a live session and extends its lifetime.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}

	now := time.Now()
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}

	e.lastSeen = now
	return e.session, true
}

// Sweep evicts every expired session and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	var n int
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of stored sessions, including expired ones not yet
// swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

type contextKey struct{}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// FromContext returns the session stored by Middleware, or nil.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(contextKey{}).(*Session)
	return sess
}

// Middleware resolves the request's session from its cookie, creating one
// when the cookie is missing or the session has expired. Requests whose path
// starts with one of the passive prefixes reuse an existing session but never
// create one.
func (s *Store) Middleware(passive ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *Session
			if c, err := r.Cookie(s.cookie); err == nil {
				sess, _ = s.Get(c.Value)
			}

			if sess == nil && hasPrefix(r.URL.Path, passive) {
				next.ServeHTTP(w, r)
				return
			}

			if sess == nil {
				sess = s.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     s.cookie,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   s.secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

func hasPrefix(p string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}
