package middleware

import (
	"fmt"
	"net/http"

	"github.com/luxtime/luxtime-backend/api/responses"
	pkgerrors "github.com/luxtime/luxtime-backend/pkg/errors"
	"github.com/luxtime/luxtime-backend/pkg/logger"
)

// Recoverer turns a handler panic into a 500 envelope. Aborted responses keep
// propagating so net/http can drop the connection.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				ctx := r.Context()
				err := fmt.Errorf("panic: %v", rec)
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{
						"method": r.Method,
						"path":   r.URL.Path,
						"owner":  CartOwnerFromContext(ctx),
					})
					logg.Error(ctx, "request.panic", err)
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected failure"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
