package find_all

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
)

type ServiceGenres interface {
	FindAllGenres(ctx context.Context) ([]models.Genre, error)
}

func HandlerFindAllGenres(svc ServiceGenres) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genres, err := svc.FindAllGenres(r.Context())
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.GenresFromDomain(genres))
	}
}
