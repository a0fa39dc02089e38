package delete_user

import (
	"context"
	"net/http"

	"filmorate/internal/http/httputils"
)

type ServiceUsers interface {
	Delete(ctx context.Context, id int64) error
}

func HandlerDeleteUser(svc ServiceUsers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httputils.PathInt64(r, "id")
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteEmpty(w, http.StatusOK)
	}
}
