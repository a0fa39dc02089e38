package postgres

import (
	"context"
	"errors"
	"fmt"

	"filmorate/internal/domain/models"
	"filmorate/internal/repository/dto"

	"github.com/jackc/pgx/v5"
)

const userColumns = `u.user_id, u.email, u.login, u.name, u.birthday`

func (p *PostgresStorage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	row := dto.UserDBFromDomain(user)

	err := p.q(ctx).QueryRow(ctx, `
		INSERT INTO users (email, login, name, birthday)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id`,
		row.Email, row.Login, row.Name, row.Birthday,
	).Scan(&row.ID)
	if err != nil {
		return models.User{}, mapError(err, "failed to create user")
	}

	return dto.UserDBToDomain(row), nil
}

func (p *PostgresStorage) UserUpdate(ctx context.Context, user models.User) (models.User, error) {
	row := dto.UserDBFromDomain(user)

	tag, err := p.q(ctx).Exec(ctx, `
		UPDATE users
		SET email = $1, login = $2, name = $3, birthday = $4
		WHERE user_id = $5`,
		row.Email, row.Login, row.Name, row.Birthday, row.ID,
	)
	if err != nil {
		return models.User{}, mapError(err, "failed to update user %d", user.ID)
	}
	if tag.RowsAffected() == 0 {
		return models.User{}, fmt.Errorf("%w: user id %d", models.ErrNotFound, user.ID)
	}

	return user, nil
}

func (p *PostgresStorage) UserGetByID(ctx context.Context, id int64) (models.User, error) {
	return p.userGetOne(ctx, "user_id", id)
}

func (p *PostgresStorage) UserGetByEmail(ctx context.Context, email string) (models.User, error) {
	return p.userGetOne(ctx, "email", email)
}

func (p *PostgresStorage) UserGetByLogin(ctx context.Context, login string) (models.User, error) {
	return p.userGetOne(ctx, "login", login)
}

// userGetOne ищет пользователя по уникальной колонке. column задается только из кода.
func (p *PostgresStorage) userGetOne(ctx context.Context, column string, value any) (models.User, error) {
	row := p.q(ctx).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users u WHERE u.`+column+` = $1`,
		value,
	)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: user with %s %v", models.ErrNotFound, column, value)
		}
		return models.User{}, fmt.Errorf("failed to get user by %s: %w", column, err)
	}
	return user, nil
}

func (p *PostgresStorage) UserGetAll(ctx context.Context) ([]models.User, error) {
	rows, err := p.q(ctx).Query(ctx,
		`SELECT `+userColumns+` FROM users u ORDER BY u.user_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return collectUsers(rows)
}

// UserDelete удаляет пользователя, лайки и дружбы удаляются каскадом
func (p *PostgresStorage) UserDelete(ctx context.Context, id int64) error {
	tag, err := p.q(ctx).Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user id %d", models.ErrNotFound, id)
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var u dto.UserDB
	if err := row.Scan(&u.ID, &u.Email, &u.Login, &u.Name, &u.Birthday); err != nil {
		return models.User{}, err
	}
	return dto.UserDBToDomain(u), nil
}

func collectUsers(rows pgx.Rows) ([]models.User, error) {
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return users, nil
}
