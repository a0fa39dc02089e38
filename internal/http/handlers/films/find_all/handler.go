package find_all

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
)

type ServiceFilms interface {
	FindAll(ctx context.Context) ([]models.Film, error)
}

func HandlerFindAllFilms(svc ServiceFilms) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		films, err := svc.FindAll(r.Context())
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.FilmsFromDomain(films))
	}
}
