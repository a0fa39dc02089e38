package postgres

import (
	"context"
	"fmt"
)

// LikeAdd идемпотентен за счет первичного ключа (film_id, user_id)
func (p *PostgresStorage) LikeAdd(ctx context.Context, filmID, userID int64) error {
	_, err := p.q(ctx).Exec(ctx, `
		INSERT INTO likes (film_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (film_id, user_id) DO NOTHING`,
		filmID, userID,
	)
	if err != nil {
		return mapError(err, "failed to add like of user %d to film %d", userID, filmID)
	}
	return nil
}

func (p *PostgresStorage) LikeDelete(ctx context.Context, filmID, userID int64) error {
	_, err := p.q(ctx).Exec(ctx,
		`DELETE FROM likes WHERE film_id = $1 AND user_id = $2`,
		filmID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete like of user %d from film %d: %w", userID, filmID, err)
	}
	return nil
}
