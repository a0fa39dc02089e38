package films

import (
	"context"
	"fmt"

	"filmorate/internal/domain/models"
	"filmorate/internal/domain/validation"
	"filmorate/internal/logger"
)

/*
FilmStorage - хранилище фильмов, лайков и справочников жанров и рейтингов
*/

//go:generate mockgen -source=films.go -destination=../../mocks/mock_film_storage.go -package=mocks
type FilmStorage interface {
	FilmCreate(ctx context.Context, film models.Film) (models.Film, error)
	FilmUpdate(ctx context.Context, film models.Film) (models.Film, error)
	FilmGetByID(ctx context.Context, id int64) (models.Film, error)
	FilmGetAll(ctx context.Context) ([]models.Film, error)
	FilmGetPopular(ctx context.Context, count int) ([]models.Film, error)

	LikeAdd(ctx context.Context, filmID, userID int64) error
	LikeDelete(ctx context.Context, filmID, userID int64) error

	GenreGetAll(ctx context.Context) ([]models.Genre, error)
	GenreGetByID(ctx context.Context, id int) (models.Genre, error)
	GenreGetByIDs(ctx context.Context, ids []int) ([]models.Genre, error)
	MpaGetAll(ctx context.Context) ([]models.Mpa, error)
	MpaGetByID(ctx context.Context, id int) (models.Mpa, error)

	FilmGenresCreate(ctx context.Context, filmID int64, genreIDs []int) error
	FilmGenresReplace(ctx context.Context, filmID int64, genreIDs []int) error
	FilmGenresGetByFilm(ctx context.Context, filmID int64) ([]models.Genre, error)

	UserGetByID(ctx context.Context, id int64) (models.User, error)

	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const DefaultPopularCount = 10

// FilmService реализует бизнес-логику фильмов, лайков и справочников
type FilmService struct {
	storage FilmStorage
}

func NewServiceFilms(storage FilmStorage) *FilmService {
	return &FilmService{storage: storage}
}

// Create сохраняет фильм и его жанры в одной транзакции
func (s *FilmService) Create(ctx context.Context, film models.Film) (models.Film, error) {
	film.ID = 0
	if err := validate(film); err != nil {
		return models.Film{}, err
	}

	var created models.Film
	err := s.storage.WithinTx(ctx, func(ctx context.Context) error {
		genreIDs, err := s.checkReferences(ctx, film)
		if err != nil {
			return err
		}

		stored, err := s.storage.FilmCreate(ctx, film)
		if err != nil {
			return err
		}
		if err := s.storage.FilmGenresCreate(ctx, stored.ID, genreIDs); err != nil {
			return err
		}

		created, err = s.storage.FilmGetByID(ctx, stored.ID)
		return err
	})
	if err != nil {
		return models.Film{}, fmt.Errorf("failed to create film: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int64("film_id", created.ID).
		Int("genres", len(created.Genres)).
		Msg("film created")

	return created, nil
}

// Update полностью заменяет фильм, жанры пересобираются заново
func (s *FilmService) Update(ctx context.Context, film models.Film) (models.Film, error) {
	if film.ID <= 0 {
		return models.Film{}, fmt.Errorf("%w: id is required", models.ErrValidation)
	}
	if err := validate(film); err != nil {
		return models.Film{}, err
	}

	var updated models.Film
	err := s.storage.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.FilmGetByID(ctx, film.ID); err != nil {
			return err
		}

		genreIDs, err := s.checkReferences(ctx, film)
		if err != nil {
			return err
		}

		stored, err := s.storage.FilmUpdate(ctx, film)
		if err != nil {
			return err
		}
		if err := s.storage.FilmGenresReplace(ctx, film.ID, genreIDs); err != nil {
			return err
		}

		// жанры перечитываются после замены, остальное уже вернул FilmUpdate
		stored.Genres, err = s.storage.FilmGenresGetByFilm(ctx, film.ID)
		if err != nil {
			return err
		}
		updated = stored
		return nil
	})
	if err != nil {
		return models.Film{}, fmt.Errorf("failed to update film: %w", err)
	}

	return updated, nil
}

func (s *FilmService) FindByID(ctx context.Context, id int64) (models.Film, error) {
	film, err := s.storage.FilmGetByID(ctx, id)
	if err != nil {
		return models.Film{}, fmt.Errorf("failed to get film: %w", err)
	}
	return film, nil
}

func (s *FilmService) FindAll(ctx context.Context) ([]models.Film, error) {
	films, err := s.storage.FilmGetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get films: %w", err)
	}
	return films, nil
}

// AddLike ставит лайк. Повторный лайк того же пользователя ничего не меняет.
func (s *FilmService) AddLike(ctx context.Context, filmID, userID int64) error {
	err := s.storage.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.requireFilmAndUser(ctx, filmID, userID); err != nil {
			return err
		}
		return s.storage.LikeAdd(ctx, filmID, userID)
	})
	if err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

func (s *FilmService) DeleteLike(ctx context.Context, filmID, userID int64) error {
	err := s.storage.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.requireFilmAndUser(ctx, filmID, userID); err != nil {
			return err
		}
		return s.storage.LikeDelete(ctx, filmID, userID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

// GetPopularFilms возвращает не больше count фильмов по убыванию лайков,
// при равенстве лайков меньший id идет первым
func (s *FilmService) GetPopularFilms(ctx context.Context, count int) ([]models.Film, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", models.ErrValidation)
	}

	films, err := s.storage.FilmGetPopular(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("failed to get popular films: %w", err)
	}
	return films, nil
}

func (s *FilmService) FindAllMpa(ctx context.Context) ([]models.Mpa, error) {
	ratings, err := s.storage.MpaGetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get mpa ratings: %w", err)
	}
	return ratings, nil
}

func (s *FilmService) FindMpaByID(ctx context.Context, id int) (models.Mpa, error) {
	rating, err := s.storage.MpaGetByID(ctx, id)
	if err != nil {
		return models.Mpa{}, fmt.Errorf("failed to get mpa rating: %w", err)
	}
	return rating, nil
}

func (s *FilmService) FindAllGenres(ctx context.Context) ([]models.Genre, error) {
	genres, err := s.storage.GenreGetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get genres: %w", err)
	}
	return genres, nil
}

func (s *FilmService) FindGenreByID(ctx context.Context, id int) (models.Genre, error) {
	genre, err := s.storage.GenreGetByID(ctx, id)
	if err != nil {
		return models.Genre{}, fmt.Errorf("failed to get genre: %w", err)
	}
	return genre, nil
}

func validate(film models.Film) error {
	if err := validation.Struct(film); err != nil {
		return err
	}
	if film.ReleaseDate.Before(models.EarliestReleaseDate) {
		return fmt.Errorf("%w: releaseDate must not be before %s",
			models.ErrValidation, models.EarliestReleaseDate.Format("2006-01-02"))
	}
	return nil
}

// checkReferences проверяет рейтинг и жанры фильма и возвращает
// отсортированные id жанров без повторов
func (s *FilmService) checkReferences(ctx context.Context, film models.Film) ([]int, error) {
	if _, err := s.storage.MpaGetByID(ctx, film.Mpa.ID); err != nil {
		return nil, err
	}

	genreIDs := models.GenreIDs(models.NormalizeGenres(film.Genres))
	if len(genreIDs) == 0 {
		return genreIDs, nil
	}

	found, err := s.storage.GenreGetByIDs(ctx, genreIDs)
	if err != nil {
		return nil, err
	}
	if len(found) != len(genreIDs) {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, missingGenres(genreIDs, found))
	}
	return genreIDs, nil
}

func (s *FilmService) requireFilmAndUser(ctx context.Context, filmID, userID int64) error {
	if _, err := s.storage.FilmGetByID(ctx, filmID); err != nil {
		return err
	}
	if _, err := s.storage.UserGetByID(ctx, userID); err != nil {
		return err
	}
	return nil
}

func missingGenres(requested []int, found []models.Genre) string {
	known := make(map[int]struct{}, len(found))
	for _, g := range found {
		known[g.ID] = struct{}{}
	}

	var missing []int
	for _, id := range requested {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	return fmt.Sprintf("genre ids %v", missing)
}
