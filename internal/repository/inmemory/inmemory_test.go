package inmemory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"filmorate/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(n int) models.User {
	return models.User{
		Email:    fmt.Sprintf("user%d@mail.ru", n),
		Login:    fmt.Sprintf("login-user%d", n),
		Name:     fmt.Sprintf("User %d", n),
		Birthday: time.Date(1990, 1, n, 0, 0, 0, 0, time.UTC),
	}
}

func newFilm(name string) models.Film {
	return models.Film{
		Name:        name,
		Description: "description",
		ReleaseDate: models.EarliestReleaseDate,
		Duration:    100,
		Mpa:         models.Mpa{ID: 1},
	}
}

func mustUsers(t *testing.T, s *InmemoryStorage, n int) []models.User {
	t.Helper()
	users := make([]models.User, 0, n)
	for i := 1; i <= n; i++ {
		u, err := s.UserCreate(context.Background(), newUser(i))
		require.NoError(t, err)
		users = append(users, u)
	}
	return users
}

func TestInmemoryStorage_Users(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()

	first, err := s.UserCreate(ctx, newUser(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := s.UserCreate(ctx, newUser(2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	t.Run("duplicate login is a conflict", func(t *testing.T) {
		dup := newUser(3)
		dup.Login = first.Login
		_, err := s.UserCreate(ctx, dup)
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run("get by id, email and login", func(t *testing.T) {
		got, err := s.UserGetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first, got)

		got, err = s.UserGetByEmail(ctx, second.Email)
		require.NoError(t, err)
		assert.Equal(t, second, got)

		got, err = s.UserGetByLogin(ctx, second.Login)
		require.NoError(t, err)
		assert.Equal(t, second, got)

		_, err = s.UserGetByLogin(ctx, "nobody")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("update replaces record", func(t *testing.T) {
		upd := first
		upd.Name = "Renamed"
		got, err := s.UserUpdate(ctx, upd)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)

		stored, err := s.UserGetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", stored.Name)
	})

	t.Run("update to taken email is a conflict", func(t *testing.T) {
		upd := first
		upd.Email = second.Email
		_, err := s.UserUpdate(ctx, upd)
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run("update unknown id", func(t *testing.T) {
		upd := newUser(9)
		upd.ID = 99
		_, err := s.UserUpdate(ctx, upd)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("get all ordered by id", func(t *testing.T) {
		all, err := s.UserGetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, int64(1), all[0].ID)
		assert.Equal(t, int64(2), all[1].ID)
	})
}

func TestInmemoryStorage_UserDeleteCascades(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	users := mustUsers(t, s, 3)

	film, err := s.FilmCreate(ctx, newFilm("Film1"))
	require.NoError(t, err)

	require.NoError(t, s.FriendAdd(ctx, users[0].ID, users[1].ID))
	require.NoError(t, s.FriendAdd(ctx, users[1].ID, users[0].ID))
	require.NoError(t, s.LikeAdd(ctx, film.ID, users[1].ID))

	require.NoError(t, s.UserDelete(ctx, users[1].ID))

	friends, err := s.FriendGetByUser(ctx, users[0].ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	// next id is max existing + 1
	next, err := s.UserCreate(ctx, newUser(4))
	require.NoError(t, err)
	assert.Equal(t, int64(4), next.ID)

	assert.ErrorIs(t, s.UserDelete(ctx, users[1].ID), models.ErrNotFound)
}

func TestInmemoryStorage_Friends(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	users := mustUsers(t, s, 4)
	a, b, c, d := users[0].ID, users[1].ID, users[2].ID, users[3].ID

	require.NoError(t, s.FriendAdd(ctx, a, d))
	require.NoError(t, s.FriendAdd(ctx, a, c))
	require.NoError(t, s.FriendAdd(ctx, a, b))
	require.NoError(t, s.FriendAdd(ctx, a, b)) // повтор не создает дубль
	require.NoError(t, s.FriendAdd(ctx, b, c))
	require.NoError(t, s.FriendAdd(ctx, b, a))

	t.Run("friend list is directional and ordered", func(t *testing.T) {
		friends, err := s.FriendGetByUser(ctx, a)
		require.NoError(t, err)
		require.Len(t, friends, 3)
		assert.Equal(t, []int64{b, c, d}, ids(friends))

		friends, err = s.FriendGetByUser(ctx, c)
		require.NoError(t, err)
		assert.Empty(t, friends)
	})

	t.Run("common friends exclude both users", func(t *testing.T) {
		common, err := s.FriendGetCommon(ctx, a, b)
		require.NoError(t, err)
		assert.Equal(t, []int64{c}, ids(common))
	})

	t.Run("removing friendship removes from intersection", func(t *testing.T) {
		require.NoError(t, s.FriendDelete(ctx, b, c))
		common, err := s.FriendGetCommon(ctx, a, b)
		require.NoError(t, err)
		assert.Empty(t, common)
	})

	t.Run("unknown user", func(t *testing.T) {
		assert.ErrorIs(t, s.FriendAdd(ctx, a, 100), models.ErrNotFound)
	})
}

func TestInmemoryStorage_FilmsAndGenres(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()

	film, err := s.FilmCreate(ctx, newFilm("Film1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), film.ID)
	assert.Equal(t, "G", film.Mpa.Name)
	assert.Empty(t, film.Genres)

	require.NoError(t, s.FilmGenresCreate(ctx, film.ID, []int{2, 1, 2}))

	got, err := s.FilmGetByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Genre{{ID: 1, Name: "Комедия"}, {ID: 2, Name: "Драма"}}, got.Genres)

	t.Run("replace genres", func(t *testing.T) {
		require.NoError(t, s.FilmGenresReplace(ctx, film.ID, []int{6}))
		genres, err := s.FilmGenresGetByFilm(ctx, film.ID)
		require.NoError(t, err)
		assert.Equal(t, []models.Genre{{ID: 6, Name: "Боевик"}}, genres)
	})

	t.Run("replace with unknown genre keeps old ones", func(t *testing.T) {
		err := s.FilmGenresReplace(ctx, film.ID, []int{1, 42})
		assert.ErrorIs(t, err, models.ErrNotFound)
		genres, err := s.FilmGenresGetByFilm(ctx, film.ID)
		require.NoError(t, err)
		assert.Equal(t, []models.Genre{{ID: 6, Name: "Боевик"}}, genres)
	})

	t.Run("unknown mpa", func(t *testing.T) {
		f := newFilm("Film2")
		f.Mpa = models.Mpa{ID: 77}
		_, err := s.FilmCreate(ctx, f)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		upd := film
		upd.Name = "Film1 director's cut"
		upd.Mpa = models.Mpa{ID: 3}
		got, err := s.FilmUpdate(ctx, upd)
		require.NoError(t, err)
		assert.Equal(t, "PG-13", got.Mpa.Name)
		assert.Equal(t, []models.Genre{{ID: 6, Name: "Боевик"}}, got.Genres)

		upd.ID = 50
		_, err = s.FilmUpdate(ctx, upd)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("genres by ids returns only existing", func(t *testing.T) {
		genres, err := s.GenreGetByIDs(ctx, []int{5, 1, 99})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 5}, models.GenreIDs(genres))
	})

	t.Run("reference data", func(t *testing.T) {
		genres, err := s.GenreGetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, genres, 6)

		ratings, err := s.MpaGetAll(ctx)
		require.NoError(t, err)
		require.Len(t, ratings, 5)
		assert.Equal(t, "NC-17", ratings[4].Name)

		_, err = s.MpaGetByID(ctx, 6)
		assert.ErrorIs(t, err, models.ErrNotFound)
		_, err = s.GenreGetByID(ctx, 0)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestInmemoryStorage_Popular(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	users := mustUsers(t, s, 3)

	for i := 1; i <= 4; i++ {
		_, err := s.FilmCreate(ctx, newFilm(fmt.Sprintf("Film%d", i)))
		require.NoError(t, err)
	}

	// film 3: 2 лайка, film 2: 1 лайк, films 1 и 4: без лайков
	require.NoError(t, s.LikeAdd(ctx, 3, users[0].ID))
	require.NoError(t, s.LikeAdd(ctx, 3, users[1].ID))
	require.NoError(t, s.LikeAdd(ctx, 3, users[1].ID)) // повторный лайк не считается
	require.NoError(t, s.LikeAdd(ctx, 2, users[2].ID))

	popular, err := s.FilmGetPopular(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1, 4}, filmIDs(popular))

	popular, err = s.FilmGetPopular(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, filmIDs(popular))

	require.NoError(t, s.LikeDelete(ctx, 3, users[0].ID))
	require.NoError(t, s.LikeDelete(ctx, 3, users[1].ID))
	popular, err = s.FilmGetPopular(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, filmIDs(popular))

	_, err = s.FilmGetPopular(ctx, 0)
	assert.ErrorIs(t, err, models.ErrValidation)

	assert.ErrorIs(t, s.LikeAdd(ctx, 99, users[0].ID), models.ErrNotFound)
	assert.ErrorIs(t, s.LikeAdd(ctx, 1, 99), models.ErrNotFound)
}

func TestInmemoryStorage_WithinTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		s := NewStorage()
		err := s.WithinTx(ctx, func(ctx context.Context) error {
			film, err := s.FilmCreate(ctx, newFilm("Film1"))
			if err != nil {
				return err
			}
			return s.FilmGenresCreate(ctx, film.ID, []int{1})
		})
		require.NoError(t, err)

		film, err := s.FilmGetByID(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, film.Genres, 1)
	})

	t.Run("rollback on error", func(t *testing.T) {
		s := NewStorage()
		err := s.WithinTx(ctx, func(ctx context.Context) error {
			film, err := s.FilmCreate(ctx, newFilm("Film1"))
			if err != nil {
				return err
			}
			return s.FilmGenresCreate(ctx, film.ID, []int{1, 100})
		})
		require.ErrorIs(t, err, models.ErrNotFound)

		all, err := s.FilmGetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("rollback on panic", func(t *testing.T) {
		s := NewStorage()
		assert.Panics(t, func() {
			_ = s.WithinTx(ctx, func(ctx context.Context) error {
				if _, err := s.UserCreate(ctx, newUser(1)); err != nil {
					return err
				}
				panic("boom")
			})
		})

		all, err := s.UserGetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("nested tx joins outer", func(t *testing.T) {
		s := NewStorage()
		errOuter := errors.New("outer failed")
		err := s.WithinTx(ctx, func(ctx context.Context) error {
			if err := s.WithinTx(ctx, func(ctx context.Context) error {
				_, err := s.UserCreate(ctx, newUser(1))
				return err
			}); err != nil {
				return err
			}
			return errOuter
		})
		require.ErrorIs(t, err, errOuter)

		all, err := s.UserGetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := NewStorage()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := s.WithinTx(cctx, func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestInmemoryStorage_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()

	const workers = 32
	var wg sync.WaitGroup
	for i := 1; i <= workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := s.UserCreate(ctx, newUser(n))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := s.UserGetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, workers)
	for i, u := range all {
		assert.Equal(t, int64(i+1), u.ID)
	}
}

func TestInmemoryStorage_Close(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	mustUsers(t, s, 2)

	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close())

	all, err := s.UserGetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	genres, err := s.GenreGetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, genres, 6)
}

func ids(users []models.User) []int64 {
	out := make([]int64, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func filmIDs(films []models.Film) []int64 {
	out := make([]int64, 0, len(films))
	for _, f := range films {
		out = append(out, f.ID)
	}
	return out
}
