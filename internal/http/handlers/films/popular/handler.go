package popular

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
)

const defaultCount = 10

type ServiceFilms interface {
	GetPopularFilms(ctx context.Context, count int) ([]models.Film, error)
}

// HandlerPopularFilms - GET /films/popular?count=N, по умолчанию 10
func HandlerPopularFilms(svc ServiceFilms) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := httputils.QueryInt(r, "count", defaultCount)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		films, err := svc.GetPopularFilms(r.Context(), count)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.FilmsFromDomain(films))
	}
}
