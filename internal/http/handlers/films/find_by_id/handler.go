package find_by_id

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
)

type ServiceFilms interface {
	FindByID(ctx context.Context, id int64) (models.Film, error)
}

func HandlerFindFilm(svc ServiceFilms) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httputils.PathInt64(r, "id")
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		film, err := svc.FindByID(r.Context(), id)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.FilmFromDomain(film))
	}
}
