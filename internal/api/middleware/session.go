package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/eternaldle/eternaldle-go/internal/api/apierr"
	"github.com/eternaldle/eternaldle-go/internal/model"
	"github.com/eternaldle/eternaldle-go/internal/services/session"
)

type contextKey string

const sessionContextKey contextKey = "session"

// CookieName is the game session cookie
const CookieName = "eternaldle_session"

// CookieConfig controls how the session cookie is issued
type CookieConfig struct {
	// TTL bounds the cookie lifetime; should match the storage session TTL
	TTL time.Duration

	// Secure enables Secure + SameSite=None for cross-site frontends.
	// Without it the cookie is SameSite=Lax (local development).
	Secure bool
}

// Session resolves the client's game session from its cookie, minting a new
// session (and re-setting the cookie) when none is presented or the stored
// session has expired. Handlers downstream always see a session in context.
func Session(sessions *session.Service, cfg CookieConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if cookie, err := r.Cookie(CookieName); err == nil {
				token = cookie.Value
			}

			sess, err := sessions.GetOrCreate(r.Context(), token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			if string(sess.Token) != token {
				setSessionCookie(w, sess.Token, cfg)
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func setSessionCookie(w http.ResponseWriter, token model.SessionToken, cfg CookieConfig) {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    string(token),
		Path:     "/",
		MaxAge:   int(cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	// Cross-site cookies require SameSite=None, which browsers only accept
	// over HTTPS
	if cfg.Secure {
		cookie.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, cookie)
}

// GetSession returns the game session from the request context
func GetSession(ctx context.Context) *model.GameSession {
	sess, _ := ctx.Value(sessionContextKey).(*model.GameSession)
	return sess
}

// MustGetSession returns the game session or panics
func MustGetSession(ctx context.Context) *model.GameSession {
	sess := GetSession(ctx)
	if sess == nil {
		panic("no session in context - session middleware not applied?")
	}
	return sess
}
