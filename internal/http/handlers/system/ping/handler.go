package ping

import (
	"context"
	"net/http"

	"filmorate/internal/http/httputils"
	"filmorate/internal/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HandlerPing проверяет доступность хранилища
func HandlerPing(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := p.Ping(r.Context()); err != nil {
			logger.FromContext(r.Context()).Error().Err(err).Msg("storage ping failed")
			httputils.WriteInternalError(w)
			return
		}
		httputils.WriteEmpty(w, http.StatusOK)
	}
}
