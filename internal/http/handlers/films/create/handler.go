package create

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
)

type ServiceFilms interface {
	Create(ctx context.Context, film models.Film) (models.Film, error)
}

func HandlerCreateFilm(svc ServiceFilms) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.Film
		if err := httputils.DecodeJSON(r, &req); err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		film, err := svc.Create(r.Context(), req.ToDomain())
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.FilmFromDomain(film))
	}
}
