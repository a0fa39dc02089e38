package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"filmorate/internal/domain/models"
	"filmorate/internal/logger"
	"filmorate/internal/repository/dto"

	"github.com/jackc/pgx/v5"
)

// Жанры фильма собираются подзапросом в одну строку "id:name,id:name",
// чтобы JOIN с жанрами не размножал строки лайков при подсчете популярности.
const filmSelect = `
	SELECT f.film_id, f.name, f.description, f.release_date, f.duration,
	       f.rating_id, m.name AS rating,
	       COALESCE((
	           SELECT string_agg(g.genre_id || ':' || g.name, ',' ORDER BY g.genre_id)
	           FROM film_genres fg
	           JOIN genres g ON g.genre_id = fg.genre_id
	           WHERE fg.film_id = f.film_id
	       ), '') AS genres
	FROM films f
	JOIN mpa m ON m.rating_id = f.rating_id`

func (p *PostgresStorage) FilmCreate(ctx context.Context, film models.Film) (models.Film, error) {
	var id int64
	err := p.q(ctx).QueryRow(ctx, `
		INSERT INTO films (name, description, release_date, duration, rating_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING film_id`,
		film.Name, film.Description, film.ReleaseDate, film.Duration, film.Mpa.ID,
	).Scan(&id)
	if err != nil {
		return models.Film{}, mapError(err, "failed to create film")
	}

	return p.FilmGetByID(ctx, id)
}

func (p *PostgresStorage) FilmUpdate(ctx context.Context, film models.Film) (models.Film, error) {
	tag, err := p.q(ctx).Exec(ctx, `
		UPDATE films
		SET name = $1, description = $2, release_date = $3, duration = $4, rating_id = $5
		WHERE film_id = $6`,
		film.Name, film.Description, film.ReleaseDate, film.Duration, film.Mpa.ID, film.ID,
	)
	if err != nil {
		return models.Film{}, mapError(err, "failed to update film %d", film.ID)
	}
	if tag.RowsAffected() == 0 {
		return models.Film{}, fmt.Errorf("%w: film id %d", models.ErrNotFound, film.ID)
	}

	return p.FilmGetByID(ctx, film.ID)
}

func (p *PostgresStorage) FilmGetByID(ctx context.Context, id int64) (models.Film, error) {
	row := p.q(ctx).QueryRow(ctx, filmSelect+`
	WHERE f.film_id = $1`,
		id,
	)

	film, err := scanFilm(ctx, row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Film{}, fmt.Errorf("%w: film id %d", models.ErrNotFound, id)
		}
		return models.Film{}, fmt.Errorf("failed to get film %d: %w", id, err)
	}
	return film, nil
}

func (p *PostgresStorage) FilmGetAll(ctx context.Context) ([]models.Film, error) {
	rows, err := p.q(ctx).Query(ctx, filmSelect+`
	ORDER BY f.film_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query films: %w", err)
	}
	return collectFilms(ctx, rows)
}

// FilmGetPopular сортирует по числу лайков по убыванию, при равенстве - по id
func (p *PostgresStorage) FilmGetPopular(ctx context.Context, count int) ([]models.Film, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", models.ErrValidation)
	}

	rows, err := p.q(ctx).Query(ctx, filmSelect+`
	LEFT JOIN likes l ON l.film_id = f.film_id
	GROUP BY f.film_id, m.name
	ORDER BY COUNT(l.user_id) DESC, f.film_id
	LIMIT $1`,
		count,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular films: %w", err)
	}
	return collectFilms(ctx, rows)
}

func scanFilm(ctx context.Context, row pgx.Row) (models.Film, error) {
	var f dto.FilmDB
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Description,
		&f.ReleaseDate,
		&f.Duration,
		&f.RatingID,
		&f.RatingName,
		&f.Genres,
	)
	if err != nil {
		return models.Film{}, err
	}

	film, skipped := f.ToDomain()
	if len(skipped) > 0 {
		logger.FromContext(ctx).Warn().
			Int64("film_id", f.ID).
			Str("segments", strings.Join(skipped, ",")).
			Msg("skipped malformed genre segments")
	}
	return film, nil
}

func collectFilms(ctx context.Context, rows pgx.Rows) ([]models.Film, error) {
	defer rows.Close()

	films := make([]models.Film, 0)
	for rows.Next() {
		film, err := scanFilm(ctx, rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan film: %w", err)
		}
		films = append(films, film)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return films, nil
}
