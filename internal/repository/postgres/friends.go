package postgres

import (
	"context"
	"fmt"

	"filmorate/internal/domain/models"
)

// FriendAdd добавляет направленную связь. Повтор не создает второй строки.
func (p *PostgresStorage) FriendAdd(ctx context.Context, userID, friendID int64) error {
	_, err := p.q(ctx).Exec(ctx, `
		INSERT INTO friendship (user_id, friend_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, friend_id) DO NOTHING`,
		userID, friendID,
	)
	if err != nil {
		return mapError(err, "failed to add friend %d to user %d", friendID, userID)
	}
	return nil
}

func (p *PostgresStorage) FriendDelete(ctx context.Context, userID, friendID int64) error {
	_, err := p.q(ctx).Exec(ctx,
		`DELETE FROM friendship WHERE user_id = $1 AND friend_id = $2`,
		userID, friendID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete friend %d of user %d: %w", friendID, userID, err)
	}
	return nil
}

func (p *PostgresStorage) FriendGetByUser(ctx context.Context, userID int64) ([]models.User, error) {
	rows, err := p.q(ctx).Query(ctx, `
		SELECT `+userColumns+`
		FROM friendship f
		JOIN users u ON u.user_id = f.friend_id
		WHERE f.user_id = $1
		ORDER BY u.user_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query friends of user %d: %w", userID, err)
	}
	return collectUsers(rows)
}

func (p *PostgresStorage) FriendGetCommon(ctx context.Context, userID, otherID int64) ([]models.User, error) {
	rows, err := p.q(ctx).Query(ctx, `
		SELECT `+userColumns+`
		FROM friendship f
		JOIN friendship o ON o.friend_id = f.friend_id
		JOIN users u ON u.user_id = f.friend_id
		WHERE f.user_id = $1
		  AND o.user_id = $2
		  AND f.friend_id <> $1
		  AND f.friend_id <> $2
		ORDER BY u.user_id`,
		userID, otherID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query common friends of %d and %d: %w", userID, otherID, err)
	}
	return collectUsers(rows)
}
