package find_all

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
)

type ServiceMpa interface {
	FindAllMpa(ctx context.Context) ([]models.Mpa, error)
}

func HandlerFindAllMpa(svc ServiceMpa) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ratings, err := svc.FindAllMpa(r.Context())
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.MpasFromDomain(ratings))
	}
}
