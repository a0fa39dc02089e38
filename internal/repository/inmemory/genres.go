package inmemory

import (
	"context"
	"fmt"
	"sort"

	"filmorate/internal/domain/models"
)

func (m *InmemoryStorage) GenreGetAll(ctx context.Context) ([]models.Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	unlock := m.rlock(ctx)
	defer unlock()

	genres := make([]models.Genre, 0, len(m.genres))
	for _, g := range m.genres {
		genres = append(genres, g)
	}
	return models.NormalizeGenres(genres), nil
}

func (m *InmemoryStorage) GenreGetByID(ctx context.Context, id int) (models.Genre, error) {
	if err := ctx.Err(); err != nil {
		return models.Genre{}, err
	}
	unlock := m.rlock(ctx)
	defer unlock()

	g, ok := m.genres[id]
	if !ok {
		return models.Genre{}, fmt.Errorf("%w: genre id %d", models.ErrNotFound, id)
	}
	return g, nil
}

// GenreGetByIDs возвращает только существующие жанры из запрошенных
func (m *InmemoryStorage) GenreGetByIDs(ctx context.Context, ids []int) ([]models.Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	unlock := m.rlock(ctx)
	defer unlock()

	genres := make([]models.Genre, 0, len(ids))
	for _, id := range ids {
		if g, ok := m.genres[id]; ok {
			genres = append(genres, g)
		}
	}
	return models.NormalizeGenres(genres), nil
}

func (m *InmemoryStorage) MpaGetAll(ctx context.Context) ([]models.Mpa, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	unlock := m.rlock(ctx)
	defer unlock()

	ratings := make([]models.Mpa, 0, len(m.mpa))
	for _, r := range m.mpa {
		ratings = append(ratings, r)
	}
	sort.Slice(ratings, func(i, j int) bool {
		return ratings[i].ID < ratings[j].ID
	})
	return ratings, nil
}

func (m *InmemoryStorage) MpaGetByID(ctx context.Context, id int) (models.Mpa, error) {
	if err := ctx.Err(); err != nil {
		return models.Mpa{}, err
	}
	unlock := m.rlock(ctx)
	defer unlock()

	r, ok := m.mpa[id]
	if !ok {
		return models.Mpa{}, fmt.Errorf("%w: mpa id %d", models.ErrNotFound, id)
	}
	return r, nil
}

func (m *InmemoryStorage) FilmGenresCreate(ctx context.Context, filmID int64, genreIDs []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := m.lock(ctx)
	defer unlock()

	return m.addFilmGenres(filmID, genreIDs)
}

// FilmGenresReplace удаляет старые связи фильма с жанрами и записывает новые
func (m *InmemoryStorage) FilmGenresReplace(ctx context.Context, filmID int64, genreIDs []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := m.lock(ctx)
	defer unlock()

	old := m.filmGenres[filmID]
	delete(m.filmGenres, filmID)
	if err := m.addFilmGenres(filmID, genreIDs); err != nil {
		if old != nil {
			m.filmGenres[filmID] = old
		}
		return err
	}
	return nil
}

func (m *InmemoryStorage) FilmGenresGetByFilm(ctx context.Context, filmID int64) ([]models.Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	unlock := m.rlock(ctx)
	defer unlock()

	return m.genresOf(filmID), nil
}

func (m *InmemoryStorage) addFilmGenres(filmID int64, genreIDs []int) error {
	if _, ok := m.films[filmID]; !ok {
		return fmt.Errorf("%w: film id %d", models.ErrNotFound, filmID)
	}
	for _, id := range genreIDs {
		if _, ok := m.genres[id]; !ok {
			return fmt.Errorf("%w: genre id %d", models.ErrNotFound, id)
		}
	}

	if len(genreIDs) == 0 {
		return nil
	}
	set, ok := m.filmGenres[filmID]
	if !ok {
		set = make(map[int]struct{}, len(genreIDs))
		m.filmGenres[filmID] = set
	}
	for _, id := range genreIDs {
		set[id] = struct{}{}
	}
	return nil
}
