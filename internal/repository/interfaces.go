package repository

import (
	"context"

	"filmorate/internal/domain/models"
)

// Storage - полный набор операций хранилища. Его реализуют inmemory и postgres,
// а сервисы объявляют у себя только нужные им подмножества.
type (
	Storage interface {
		UserStorage
		FriendStorage
		FilmStorage
		LikeStorage
		GenreStorage
		MpaStorage
		FilmGenresStorage

		// Управление соединением
		WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
		Ping(ctx context.Context) error
		Close() error
	}

	UserStorage interface {
		UserCreate(ctx context.Context, user models.User) (models.User, error)
		UserUpdate(ctx context.Context, user models.User) (models.User, error)
		UserGetByID(ctx context.Context, id int64) (models.User, error)
		UserGetAll(ctx context.Context) ([]models.User, error)
		UserGetByEmail(ctx context.Context, email string) (models.User, error)
		UserGetByLogin(ctx context.Context, login string) (models.User, error)
		UserDelete(ctx context.Context, id int64) error
	}

	FriendStorage interface {
		FriendAdd(ctx context.Context, userID, friendID int64) error
		FriendDelete(ctx context.Context, userID, friendID int64) error
		FriendGetByUser(ctx context.Context, userID int64) ([]models.User, error)
		FriendGetCommon(ctx context.Context, userID, otherID int64) ([]models.User, error)
	}

	FilmStorage interface {
		FilmCreate(ctx context.Context, film models.Film) (models.Film, error)
		FilmUpdate(ctx context.Context, film models.Film) (models.Film, error)
		FilmGetByID(ctx context.Context, id int64) (models.Film, error)
		FilmGetAll(ctx context.Context) ([]models.Film, error)
		FilmGetPopular(ctx context.Context, count int) ([]models.Film, error)
	}

	LikeStorage interface {
		LikeAdd(ctx context.Context, filmID, userID int64) error
		LikeDelete(ctx context.Context, filmID, userID int64) error
	}

	GenreStorage interface {
		GenreGetAll(ctx context.Context) ([]models.Genre, error)
		GenreGetByID(ctx context.Context, id int) (models.Genre, error)
		GenreGetByIDs(ctx context.Context, ids []int) ([]models.Genre, error)
	}

	MpaStorage interface {
		MpaGetAll(ctx context.Context) ([]models.Mpa, error)
		MpaGetByID(ctx context.Context, id int) (models.Mpa, error)
	}

	FilmGenresStorage interface {
		FilmGenresCreate(ctx context.Context, filmID int64, genreIDs []int) error
		FilmGenresReplace(ctx context.Context, filmID int64, genreIDs []int) error
		FilmGenresGetByFilm(ctx context.Context, filmID int64) ([]models.Genre, error)
	}
)
