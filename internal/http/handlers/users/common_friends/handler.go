package common_friends

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
)

type ServiceUsers interface {
	FindCommonFriends(ctx context.Context, userID, otherID int64) ([]models.User, error)
}

// HandlerCommonFriends - GET /users/{id}/friends/common/{otherId}
func HandlerCommonFriends(svc ServiceUsers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.PathInt64(r, "id")
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}
		otherID, err := httputils.PathInt64(r, "otherId")
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		common, err := svc.FindCommonFriends(r.Context(), userID, otherID)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.UsersFromDomain(common))
	}
}
