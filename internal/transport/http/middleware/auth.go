package middleware

import (
	"context"
	"net/http"
	"strings"

	"staffhub/internal/auth"
	"staffhub/internal/domain/session"
	"staffhub/internal/transport/http/api"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

// Guard is the navigation-guard boundary: requests carry either a bearer
// token from login/signup or ride the active in-process session.
type Guard struct {
	Secret   string
	Sessions *session.Manager
}

// RequireSession rejects requests without an authenticated identity.
func (g Guard) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if profile, ok := g.identify(r); ok {
			ctx := context.WithValue(r.Context(), ctxKeyUser, profile)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
	})
}

func (g Guard) identify(r *http.Request) (session.UserProfile, bool) {
	header := r.Header.Get("Authorization")
	if header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			if claims, err := auth.ParseToken(g.Secret, parts[1]); err == nil {
				return session.UserProfile{Name: claims.Name, Email: claims.Email}, true
			}
		}
		return session.UserProfile{}, false
	}

	if g.Sessions != nil {
		if profile, ok := g.Sessions.Current(); ok {
			return profile, true
		}
	}
	return session.UserProfile{}, false
}

// GetUser returns the authenticated profile stored by RequireSession.
func GetUser(ctx context.Context) (session.UserProfile, bool) {
	profile, ok := ctx.Value(ctxKeyUser).(session.UserProfile)
	return profile, ok
}
