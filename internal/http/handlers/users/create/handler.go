package create

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
)

type ServiceUsers interface {
	Create(ctx context.Context, user models.User) (models.User, error)
}

func HandlerCreateUser(svc ServiceUsers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.User
		if err := httputils.DecodeJSON(r, &req); err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		user, err := svc.Create(r.Context(), req.ToDomain())
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.UserFromDomain(user))
	}
}
