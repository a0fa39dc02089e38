package dto

import (
	"time"

	"filmorate/internal/domain/models"
)

type (
	UserDB struct {
		ID       int64     `db:"user_id"`
		Email    string    `db:"email"`
		Login    string    `db:"login"`
		Name     string    `db:"name"`
		Birthday time.Time `db:"birthday"`
	}
)

func UserDBToDomain(u UserDB) models.User {
	return models.User{
		ID:       u.ID,
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: u.Birthday,
	}
}

func UserDBFromDomain(u models.User) UserDB {
	return UserDB{
		ID:       u.ID,
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: u.Birthday,
	}
}
