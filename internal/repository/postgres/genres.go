package postgres

import (
	"context"
	"errors"
	"fmt"

	"filmorate/internal/domain/models"
	"filmorate/internal/repository/dto"

	"github.com/jackc/pgx/v5"
)

func (p *PostgresStorage) GenreGetAll(ctx context.Context) ([]models.Genre, error) {
	rows, err := p.q(ctx).Query(ctx, `SELECT genre_id, name FROM genres ORDER BY genre_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	return collectGenres(rows)
}

func (p *PostgresStorage) GenreGetByID(ctx context.Context, id int) (models.Genre, error) {
	var g dto.GenreDB
	err := p.q(ctx).QueryRow(ctx,
		`SELECT genre_id, name FROM genres WHERE genre_id = $1`,
		id,
	).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Genre{}, fmt.Errorf("%w: genre id %d", models.ErrNotFound, id)
		}
		return models.Genre{}, fmt.Errorf("failed to get genre %d: %w", id, err)
	}
	return g.ToDomain(), nil
}

// GenreGetByIDs возвращает только существующие жанры из запрошенных
func (p *PostgresStorage) GenreGetByIDs(ctx context.Context, ids []int) ([]models.Genre, error) {
	if len(ids) == 0 {
		return []models.Genre{}, nil
	}

	rows, err := p.q(ctx).Query(ctx,
		`SELECT genre_id, name FROM genres WHERE genre_id = ANY($1) ORDER BY genre_id`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres by ids: %w", err)
	}
	return collectGenres(rows)
}

func (p *PostgresStorage) MpaGetAll(ctx context.Context) ([]models.Mpa, error) {
	rows, err := p.q(ctx).Query(ctx, `SELECT rating_id, name FROM mpa ORDER BY rating_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query mpa: %w", err)
	}
	defer rows.Close()

	ratings := make([]models.Mpa, 0)
	for rows.Next() {
		var m dto.MpaDB
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan mpa: %w", err)
		}
		ratings = append(ratings, m.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return ratings, nil
}

func (p *PostgresStorage) MpaGetByID(ctx context.Context, id int) (models.Mpa, error) {
	var m dto.MpaDB
	err := p.q(ctx).QueryRow(ctx,
		`SELECT rating_id, name FROM mpa WHERE rating_id = $1`,
		id,
	).Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Mpa{}, fmt.Errorf("%w: mpa id %d", models.ErrNotFound, id)
		}
		return models.Mpa{}, fmt.Errorf("failed to get mpa %d: %w", id, err)
	}
	return m.ToDomain(), nil
}

func (p *PostgresStorage) FilmGenresCreate(ctx context.Context, filmID int64, genreIDs []int) error {
	if len(genreIDs) == 0 {
		return nil
	}

	_, err := p.q(ctx).Exec(ctx, `
		INSERT INTO film_genres (film_id, genre_id)
		SELECT $1, unnest($2::integer[])
		ON CONFLICT (film_id, genre_id) DO NOTHING`,
		filmID, genreIDs,
	)
	if err != nil {
		return mapError(err, "failed to save genres of film %d", filmID)
	}
	return nil
}

// FilmGenresReplace удаляет связи фильма с жанрами и вставляет новые в одной транзакции
func (p *PostgresStorage) FilmGenresReplace(ctx context.Context, filmID int64, genreIDs []int) error {
	return p.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := p.q(ctx).Exec(ctx, `DELETE FROM film_genres WHERE film_id = $1`, filmID); err != nil {
			return fmt.Errorf("failed to delete genres of film %d: %w", filmID, err)
		}
		return p.FilmGenresCreate(ctx, filmID, genreIDs)
	})
}

func (p *PostgresStorage) FilmGenresGetByFilm(ctx context.Context, filmID int64) ([]models.Genre, error) {
	rows, err := p.q(ctx).Query(ctx, `
		SELECT g.genre_id, g.name
		FROM film_genres fg
		JOIN genres g ON g.genre_id = fg.genre_id
		WHERE fg.film_id = $1
		ORDER BY g.genre_id`,
		filmID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres of film %d: %w", filmID, err)
	}
	return collectGenres(rows)
}

func collectGenres(rows pgx.Rows) ([]models.Genre, error) {
	defer rows.Close()

	genres := make([]models.Genre, 0)
	for rows.Next() {
		var g dto.GenreDB
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return genres, nil
}
