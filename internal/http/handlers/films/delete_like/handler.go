package delete_like

import (
	"context"
	"net/http"

	"filmorate/internal/http/httputils"
)

type ServiceFilms interface {
	DeleteLike(ctx context.Context, filmID, userID int64) error
}

func HandlerDeleteLike(svc ServiceFilms) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filmID, err := httputils.PathInt64(r, "id")
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}
		userID, err := httputils.PathInt64(r, "userId")
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		if err := svc.DeleteLike(r.Context(), filmID, userID); err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteEmpty(w, http.StatusOK)
	}
}
