package inmemory

import (
	"context"
	"fmt"
	"sort"

	"filmorate/internal/domain/models"
)

func (m *InmemoryStorage) FilmCreate(ctx context.Context, film models.Film) (models.Film, error) {
	if err := ctx.Err(); err != nil {
		return models.Film{}, err
	}
	unlock := m.lock(ctx)
	defer unlock()

	if _, ok := m.mpa[film.Mpa.ID]; !ok {
		return models.Film{}, fmt.Errorf("%w: mpa id %d", models.ErrNotFound, film.Mpa.ID)
	}

	film.ID = nextID(m.films)
	film.Genres = nil
	m.films[film.ID] = film
	return m.assemble(film), nil
}

func (m *InmemoryStorage) FilmUpdate(ctx context.Context, film models.Film) (models.Film, error) {
	if err := ctx.Err(); err != nil {
		return models.Film{}, err
	}
	unlock := m.lock(ctx)
	defer unlock()

	if _, ok := m.films[film.ID]; !ok {
		return models.Film{}, fmt.Errorf("%w: film id %d", models.ErrNotFound, film.ID)
	}
	if _, ok := m.mpa[film.Mpa.ID]; !ok {
		return models.Film{}, fmt.Errorf("%w: mpa id %d", models.ErrNotFound, film.Mpa.ID)
	}

	film.Genres = nil
	m.films[film.ID] = film
	return m.assemble(film), nil
}

func (m *InmemoryStorage) FilmGetByID(ctx context.Context, id int64) (models.Film, error) {
	if err := ctx.Err(); err != nil {
		return models.Film{}, err
	}
	unlock := m.rlock(ctx)
	defer unlock()

	film, ok := m.films[id]
	if !ok {
		return models.Film{}, fmt.Errorf("%w: film id %d", models.ErrNotFound, id)
	}
	return m.assemble(film), nil
}

func (m *InmemoryStorage) FilmGetAll(ctx context.Context) ([]models.Film, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	unlock := m.rlock(ctx)
	defer unlock()

	films := make([]models.Film, 0, len(m.films))
	for _, f := range m.films {
		films = append(films, m.assemble(f))
	}
	sort.Slice(films, func(i, j int) bool {
		return films[i].ID < films[j].ID
	})
	return films, nil
}

// FilmGetPopular сортирует по числу лайков по убыванию, при равенстве - по id
func (m *InmemoryStorage) FilmGetPopular(ctx context.Context, count int) ([]models.Film, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", models.ErrValidation)
	}
	unlock := m.rlock(ctx)
	defer unlock()

	films := make([]models.Film, 0, len(m.films))
	for _, f := range m.films {
		films = append(films, f)
	}
	sort.Slice(films, func(i, j int) bool {
		li, lj := len(m.likes[films[i].ID]), len(m.likes[films[j].ID])
		if li != lj {
			return li > lj
		}
		return films[i].ID < films[j].ID
	})

	if len(films) > count {
		films = films[:count]
	}
	for i := range films {
		films[i] = m.assemble(films[i])
	}
	return films, nil
}

// assemble дополняет фильм названием рейтинга и жанрами, как это делает JOIN в postgres
func (m *InmemoryStorage) assemble(film models.Film) models.Film {
	if r, ok := m.mpa[film.Mpa.ID]; ok {
		film.Mpa = r
	}
	film.Genres = m.genresOf(film.ID)
	return film
}

func (m *InmemoryStorage) genresOf(filmID int64) []models.Genre {
	genres := make([]models.Genre, 0, len(m.filmGenres[filmID]))
	for id := range m.filmGenres[filmID] {
		if g, ok := m.genres[id]; ok {
			genres = append(genres, g)
		}
	}
	return models.NormalizeGenres(genres)
}
