package dto

import (
	"time"

	"filmorate/internal/domain/models"
)

// DTO БД для работы с таблицами films, mpa, genres
type (
	FilmDB struct {
		ID          int64     `db:"film_id"`
		Name        string    `db:"name"`
		Description string    `db:"description"`
		ReleaseDate time.Time `db:"release_date"`
		Duration    int64     `db:"duration"`
		RatingID    int       `db:"rating_id"`
		RatingName  string    `db:"rating"`
		Genres      string    `db:"genres"` // агрегат "id:name,id:name", пустой если жанров нет
	}

	GenreDB struct {
		ID   int    `db:"genre_id"`
		Name string `db:"name"`
	}

	MpaDB struct {
		ID   int    `db:"rating_id"`
		Name string `db:"name"`
	}
)

// ToDomain преобразует строку БД в доменную модель.
// Вторым значением возвращаются сегменты агрегата жанров, которые не удалось разобрать.
func (f FilmDB) ToDomain() (models.Film, []string) {
	genres, skipped := ParseGenres(f.Genres)

	return models.Film{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate,
		Duration:    f.Duration,
		Mpa: models.Mpa{
			ID:   f.RatingID,
			Name: f.RatingName,
		},
		Genres: genres,
	}, skipped
}

func (g GenreDB) ToDomain() models.Genre {
	return models.Genre{ID: g.ID, Name: g.Name}
}

func (m MpaDB) ToDomain() models.Mpa {
	return models.Mpa{ID: m.ID, Name: m.Name}
}
