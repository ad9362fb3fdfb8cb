package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/homeledger/inventory/internal/inventory/domain"
	"github.com/homeledger/inventory/internal/inventory/service"
	"github.com/homeledger/inventory/pkg/httpx"
	"github.com/homeledger/inventory/pkg/invsdk"
	"github.com/homeledger/inventory/pkg/slogx"
)

// SessionMiddleware authenticates the request from the session cookie or a
// bearer token, the first that verifies winning, and renews tokens that are
// close to expiry. Requests without a valid session get 401.
func SessionMiddleware(sessions *service.SessionService, secureCookies bool) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			candidates := tokensFromRequest(r)
			if len(candidates) == 0 {
				invsdk.ErrUnauthenticated.WriteError(w)
				return
			}

			var (
				sess domain.Session
				err  error
			)
			for _, raw := range candidates {
				if sess, err = sessions.Verify(raw); err == nil {
					break
				}
			}
			if err != nil {
				desc := "session token is invalid"
				if errors.Is(err, service.ErrTokenExpired) {
					desc = "session token has expired"
				}
				slogx.FromContext(r.Context()).Debug("session rejected", "error", err)
				invsdk.NewAPIError(http.StatusUnauthorized, invsdk.ErrorCodeInvalidToken, desc).WriteError(w)
				return
			}

			refresh, err := sessions.MaybeRefresh(sess.Subject, sess.ExpiresAt)
			if err != nil {
				slogx.FromContext(r.Context()).Warn("session refresh failed", "error", err)
			} else if refresh.Refreshed {
				setSessionCookie(w, refresh.Token, sessions.TTL(), secureCookies)
				w.Header().Set(invsdk.RefreshedHeader, "true")
			}

			ctx := httpx.WithSubject(r.Context(), sess.Subject)
			ctx = slogx.With(ctx, "user_id", sess.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokensFromRequest returns the session cookie and then the bearer token,
// whichever are present. A stale cookie must not shadow a good header.
func tokensFromRequest(r *http.Request) []string {
	var out []string
	if c, err := r.Cookie(invsdk.SessionCookie); err == nil && c.Value != "" {
		out = append(out, c.Value)
	}
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		if token = strings.TrimSpace(token); token != "" {
			out = append(out, token)
		}
	}
	return out
}

func setSessionCookie(w http.ResponseWriter, tok domain.SessionToken, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     invsdk.SessionCookie,
		Value:    tok.Value,
		Path:     "/",
		Expires:  tok.ExpiresAt,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     invsdk.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
