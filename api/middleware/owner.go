package middleware

import (
	"net/http"
	"strings"

	"github.com/luxtime/luxtime-backend/api/responses"
	"github.com/luxtime/luxtime-backend/api/validators"
	pkgAuth "github.com/luxtime/luxtime-backend/pkg/auth"
	"github.com/luxtime/luxtime-backend/pkg/config"
	pkgerrors "github.com/luxtime/luxtime-backend/pkg/errors"
	"github.com/luxtime/luxtime-backend/pkg/logger"
)

// CartSessionHeader carries the anonymous shopper's session id.
const CartSessionHeader = "X-Cart-Session"

const (
	ownerPrefixUser    = "user:"
	ownerPrefixSession = "session:"
	maxSessionIDLen    = 128
)

// CartOwner resolves whose cart a request addresses. A verified bearer token
// wins over the session header. Tokens are only inspected when cfg carries a
// secret; otherwise the Authorization header is ignored.
func CartOwner(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			var owner, userID string

			if cfg.Enabled() {
				token, present, err := validators.BearerToken(r.Header.Get("Authorization"))
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid authorization header"))
					return
				}
				if present {
					claims, err := pkgAuth.ParseAccessToken(cfg, token)
					if err != nil {
						responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
						return
					}
					userID = claims.Subject
					owner = ownerPrefixUser + userID
				}
			}

			if owner == "" {
				sessionID, err := sessionIDFromHeader(r.Header.Get(CartSessionHeader))
				if err != nil {
					responses.WriteError(ctx, logg, w, err)
					return
				}
				owner = ownerPrefixSession + sessionID
			}

			ctx = WithCartOwner(ctx, owner)
			if userID != "" {
				ctx = WithUserID(ctx, userID)
			}
			if logg != nil {
				ctx = logg.WithCartOwner(ctx, owner)
				if userID != "" {
					ctx = logg.WithUserID(ctx, userID)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionIDFromHeader(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "cart owner is required").
			WithDetails(map[string]any{"header": CartSessionHeader})
	}
	if len(id) > maxSessionIDLen {
		return "", pkgerrors.Newf(pkgerrors.CodeValidation, "cart session id must be at most %d characters", maxSessionIDLen).
			WithDetails(map[string]any{"header": CartSessionHeader})
	}
	for _, c := range id {
		if !isSessionRune(c) {
			return "", pkgerrors.New(pkgerrors.CodeValidation, "cart session id contains invalid characters").
				WithDetails(map[string]any{"header": CartSessionHeader})
		}
	}
	return id, nil
}

func isSessionRune(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '.':
		return true
	}
	return false
}
