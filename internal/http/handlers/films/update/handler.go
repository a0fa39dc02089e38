package update

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
)

type ServiceFilms interface {
	Update(ctx context.Context, film models.Film) (models.Film, error)
}

func HandlerUpdateFilm(svc ServiceFilms) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.Film
		if err := httputils.DecodeJSON(r, &req); err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		film, err := svc.Update(r.Context(), req.ToDomain())
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.FilmFromDomain(film))
	}
}
