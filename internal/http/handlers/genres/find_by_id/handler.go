package find_by_id

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
)

type ServiceGenres interface {
	FindGenreByID(ctx context.Context, id int) (models.Genre, error)
}

func HandlerFindGenre(svc ServiceGenres) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httputils.PathInt(r, "id")
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		genre, err := svc.FindGenreByID(r.Context(), id)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.GenreFromDomain(genre))
	}
}
