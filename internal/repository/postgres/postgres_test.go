package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"filmorate/internal/domain/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userCols = []string{"user_id", "email", "login", "name", "birthday"}
	filmCols = []string{"film_id", "name", "description", "release_date", "duration", "rating_id", "rating", "genres"}
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *PostgresStorage) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, New(mock)
}

func birthday() time.Time {
	return time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
}

func TestPostgresStorage_UserCreate(t *testing.T) {
	ctx := context.Background()
	input := models.User{Email: "user@mail.ru", Login: "login-user1", Name: "login-user1", Birthday: birthday()}

	t.Run("success", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectQuery("(?s)INSERT\\s+INTO\\s+users\\s+.+\\s+RETURNING\\s+user_id").
			WithArgs(input.Email, input.Login, input.Name, input.Birthday).
			WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(int64(1)))

		got, err := s.UserCreate(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, input.Login, got.Login)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation is a conflict", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectQuery("(?s)INSERT\\s+INTO\\s+users\\s+.+").
			WithArgs(input.Email, input.Login, input.Name, input.Birthday).
			WillReturnError(&pgconn.PgError{Code: pgErrCodeUniqueViolation, ConstraintName: "users_email_key"})

		_, err := s.UserCreate(ctx, input)
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrConflict)
		assert.Contains(t, err.Error(), "users_email_key")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("generic error", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectQuery("(?s)INSERT\\s+INTO\\s+users\\s+.+").
			WithArgs(input.Email, input.Login, input.Name, input.Birthday).
			WillReturnError(errors.New("connection reset"))

		_, err := s.UserCreate(ctx, input)
		require.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrConflict)
		assert.Contains(t, err.Error(), "failed to create user")
	})
}

func TestPostgresStorage_UserUpdate(t *testing.T) {
	ctx := context.Background()
	user := models.User{ID: 3, Email: "new@mail.ru", Login: "new", Name: "New", Birthday: birthday()}

	t.Run("success", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectExec("UPDATE users").
			WithArgs(user.Email, user.Login, user.Name, user.Birthday, user.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		got, err := s.UserUpdate(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, user, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectExec("UPDATE users").
			WithArgs(user.Email, user.Login, user.Name, user.Birthday, user.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		_, err := s.UserUpdate(ctx, user)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestPostgresStorage_UserGet(t *testing.T) {
	ctx := context.Background()

	t.Run("by id", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectQuery("(?s)SELECT\\s+.+\\s+FROM\\s+users\\s+u\\s+WHERE\\s+u.user_id\\s+=\\s+\\$1").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow(int64(1), "user@mail.ru", "login", "Name", birthday()))

		got, err := s.UserGetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, models.User{ID: 1, Email: "user@mail.ru", Login: "login", Name: "Name", Birthday: birthday()}, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("by login not found", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectQuery("(?s)SELECT\\s+.+\\s+FROM\\s+users\\s+u\\s+WHERE\\s+u.login\\s+=\\s+\\$1").
			WithArgs("ghost").
			WillReturnRows(pgxmock.NewRows(userCols))

		_, err := s.UserGetByLogin(ctx, "ghost")
		assert.ErrorIs(t, err, models.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("by email", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectQuery("(?s)SELECT\\s+.+\\s+FROM\\s+users\\s+u\\s+WHERE\\s+u.email\\s+=\\s+\\$1").
			WithArgs("user@mail.ru").
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow(int64(2), "user@mail.ru", "login", "Name", birthday()))

		got, err := s.UserGetByEmail(ctx, "user@mail.ru")
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.ID)
	})

	t.Run("all ordered", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectQuery("(?s)SELECT\\s+.+\\s+FROM\\s+users\\s+u\\s+ORDER\\s+BY\\s+u.user_id").
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow(int64(1), "a@mail.ru", "a", "A", birthday()).
				AddRow(int64(2), "b@mail.ru", "b", "B", birthday()))

		got, err := s.UserGetAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[1].Login)
	})

	t.Run("query error", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectQuery("(?s)SELECT\\s+.+\\s+FROM\\s+users").WillReturnError(errors.New("boom"))

		_, err := s.UserGetAll(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query users")
	})
}

func TestPostgresStorage_UserDelete(t *testing.T) {
	ctx := context.Background()

	mock, s := newMock(t)
	mock.ExpectExec("DELETE FROM users WHERE user_id = \\$1").
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM users WHERE user_id = \\$1").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, s.UserDelete(ctx, 4))
	assert.ErrorIs(t, s.UserDelete(ctx, 5), models.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_Friends(t *testing.T) {
	ctx := context.Background()

	t.Run("add is idempotent insert", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectExec("(?s)INSERT\\s+INTO\\s+friendship\\s+.+\\s+ON\\s+CONFLICT\\s+\\(user_id,\\s+friend_id\\)\\s+DO\\s+NOTHING").
			WithArgs(int64(1), int64(2)).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		require.NoError(t, s.FriendAdd(ctx, 1, 2))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("add unknown user", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectExec("INSERT INTO friendship").
			WithArgs(int64(1), int64(99)).
			WillReturnError(&pgconn.PgError{Code: pgErrCodeForeignKeyViolation, ConstraintName: "friendship_friend_id_fkey"})

		assert.ErrorIs(t, s.FriendAdd(ctx, 1, 99), models.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectExec("DELETE FROM friendship WHERE user_id = \\$1 AND friend_id = \\$2").
			WithArgs(int64(1), int64(2)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, s.FriendDelete(ctx, 1, 2))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("friends of user", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectQuery("FROM friendship f\\s+JOIN users u ON u.user_id = f.friend_id\\s+WHERE f.user_id = \\$1\\s+ORDER BY u.user_id").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow(int64(2), "b@mail.ru", "b", "B", birthday()))

		got, err := s.FriendGetByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("common friends", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectQuery("JOIN friendship o ON o.friend_id = f.friend_id").
			WithArgs(int64(1), int64(2)).
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow(int64(3), "c@mail.ru", "c", "C", birthday()))

		got, err := s.FriendGetCommon(ctx, 1, 2)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(3), got[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
