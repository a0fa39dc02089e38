package update

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
)

type ServiceUsers interface {
	Update(ctx context.Context, user models.User) (models.User, error)
}

func HandlerUpdateUser(svc ServiceUsers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.User
		if err := httputils.DecodeJSON(r, &req); err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		user, err := svc.Update(r.Context(), req.ToDomain())
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.UserFromDomain(user))
	}
}
