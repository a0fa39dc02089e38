package find_all

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
)

type ServiceUsers interface {
	FindAll(ctx context.Context) ([]models.User, error)
}

func HandlerFindAllUsers(svc ServiceUsers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.FindAll(r.Context())
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.UsersFromDomain(users))
	}
}
