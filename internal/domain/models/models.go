package models

import (
	"errors"
	"sort"
	"time"
)

type (
	User struct {
		ID       int64
		Email    string    `validate:"notblank,email"`
		Login    string    `validate:"notblank,nowhitespace"`
		Name     string
		Birthday time.Time `validate:"required"`
	}

	Film struct {
		ID          int64
		Name        string    `validate:"notblank"`
		Description string    `validate:"max=200"`
		ReleaseDate time.Time `validate:"required"`
		Duration    int64     `validate:"gt=0"` // минуты
		Mpa         Mpa       `validate:"required"`
		Genres      []Genre
	}

	// Genre и Mpa - справочники, приложение их только читает
	Genre struct {
		ID   int
		Name string
	}

	Mpa struct {
		ID   int
		Name string
	}
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
)

// EarliestReleaseDate - дата первого публичного киносеанса
var EarliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// NormalizeGenres сортирует жанры по id и убирает повторы.
// Из повторов остается первый с непустым названием.
func NormalizeGenres(genres []Genre) []Genre {
	if len(genres) == 0 {
		return []Genre{}
	}

	byID := make(map[int]Genre, len(genres))
	for _, g := range genres {
		if existing, ok := byID[g.ID]; ok && existing.Name != "" {
			continue
		}
		byID[g.ID] = g
	}

	result := make([]Genre, 0, len(byID))
	for _, g := range byID {
		result = append(result, g)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

func GenreIDs(genres []Genre) []int {
	ids := make([]int, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}
	return ids
}
