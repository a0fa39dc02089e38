package find_by_id

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
)

type ServiceMpa interface {
	FindMpaByID(ctx context.Context, id int) (models.Mpa, error)
}

func HandlerFindMpa(svc ServiceMpa) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httputils.PathInt(r, "id")
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		rating, err := svc.FindMpaByID(r.Context(), id)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.MpaFromDomain(rating))
	}
}
