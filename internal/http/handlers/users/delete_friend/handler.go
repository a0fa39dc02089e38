package delete_friend

import (
	"context"
	"net/http"

	"filmorate/internal/http/httputils"
)

type ServiceUsers interface {
	DeleteFriend(ctx context.Context, userID, friendID int64) error
}

func HandlerDeleteFriend(svc ServiceUsers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.PathInt64(r, "id")
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}
		friendID, err := httputils.PathInt64(r, "friendId")
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		if err := svc.DeleteFriend(r.Context(), userID, friendID); err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteEmpty(w, http.StatusOK)
	}
}
