package recovery

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"filmorate/internal/http/httputils"
	"filmorate/internal/logger"
)

// MiddlewareRecovery превращает панику обработчика в ответ 500
func MiddlewareRecovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.FromContext(r.Context()).Error().
						Str("panic", fmt.Sprintf("%v", err)).
						Str("stack", string(debug.Stack())).
						Msg("request panic")
					httputils.WriteInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
