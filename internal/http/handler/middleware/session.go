package middleware

import (
	"context"
	"errors"
	"net/http"

	"votehall/internal/core"

	"go.uber.org/zap"
)

const (
	SessionCookie        = "votehall_session"
	principalKey  ctxKey = "principal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Authenticator . Authenticator
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (core.Principal, error)
}

type sessionMiddleware struct {
	logs         *zap.SugaredLogger
	auth         Authenticator
	secureCookie bool
}

func NewSessionMiddleware(logger *zap.SugaredLogger, auth Authenticator, secureCookie bool) *sessionMiddleware {
	return &sessionMiddleware{
		logs:         logger,
		auth:         auth,
		secureCookie: secureCookie,
	}
}

// Session resolves the session cookie into a principal. Requests without a
// usable session continue anonymously and a stale cookie is cleared.
func (m *sessionMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		principal, err := m.auth.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, core.ErrAuthentication) {
				ClearSessionCookie(w, m.secureCookie)
			} else {
				m.logs.Errorw("failed to resolve session",
					"error", err,
					"request_id", RequestIDFrom(r.Context()))
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

func WithPrincipal(ctx context.Context, principal core.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// PrincipalFrom returns the principal of the request, or the zero Principal
// for anonymous requests.
func PrincipalFrom(ctx context.Context) core.Principal {
	principal, _ := ctx.Value(principalKey).(core.Principal)
	return principal
}

func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
