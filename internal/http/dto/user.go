package dto

import "filmorate/internal/domain/models"

type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday Date   `json:"birthday"`
}

func (u User) ToDomain() models.User {
	return models.User{
		ID:       u.ID,
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: u.Birthday.Time,
	}
}

func UserFromDomain(u models.User) User {
	return User{
		ID:       u.ID,
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: NewDate(u.Birthday),
	}
}

func UsersFromDomain(users []models.User) []User {
	res := make([]User, 0, len(users))
	for _, u := range users {
		res = append(res, UserFromDomain(u))
	}
	return res
}
