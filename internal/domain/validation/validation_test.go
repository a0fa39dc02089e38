package validation

import (
	"strings"
	"testing"
	"time"

	"filmorate/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_User(t *testing.T) {
	valid := models.User{
		Email:    "user@mail.ru",
		Login:    "login-user1",
		Birthday: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name    string
		mutate  func(u *models.User)
		wantErr string
	}{
		{name: "valid user", mutate: func(u *models.User) {}},
		{name: "blank login", mutate: func(u *models.User) { u.Login = "   " }, wantErr: "login must not be blank"},
		{name: "login with space", mutate: func(u *models.User) { u.Login = "log in" }, wantErr: "login must not contain whitespace"},
		{name: "login with tab", mutate: func(u *models.User) { u.Login = "log\tin" }, wantErr: "login must not contain whitespace"},
		{name: "empty email", mutate: func(u *models.User) { u.Email = "" }, wantErr: "email must not be blank"},
		{name: "malformed email", mutate: func(u *models.User) { u.Email = "mail.ru" }, wantErr: "email must be a valid email address"},
		{name: "missing birthday", mutate: func(u *models.User) { u.Birthday = time.Time{} }, wantErr: "birthday is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := valid
			tt.mutate(&u)

			err := Struct(u)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStruct_Film(t *testing.T) {
	valid := models.Film{
		Name:        "Film1",
		Description: "description",
		ReleaseDate: models.EarliestReleaseDate,
		Duration:    1,
		Mpa:         models.Mpa{ID: 1},
	}

	tests := []struct {
		name    string
		mutate  func(f *models.Film)
		wantErr string
	}{
		{name: "valid film", mutate: func(f *models.Film) {}},
		{name: "description of 200 runes", mutate: func(f *models.Film) { f.Description = strings.Repeat("ж", 200) }},
		{name: "blank name", mutate: func(f *models.Film) { f.Name = " " }, wantErr: "name must not be blank"},
		{name: "description too long", mutate: func(f *models.Film) { f.Description = strings.Repeat("a", 201) }, wantErr: "description must be at most 200 characters"},
		{name: "zero duration", mutate: func(f *models.Film) { f.Duration = 0 }, wantErr: "duration must be greater than 0"},
		{name: "negative duration", mutate: func(f *models.Film) { f.Duration = -10 }, wantErr: "duration must be greater than 0"},
		{name: "missing release date", mutate: func(f *models.Film) { f.ReleaseDate = time.Time{} }, wantErr: "releaseDate is required"},
		{name: "missing mpa", mutate: func(f *models.Film) { f.Mpa = models.Mpa{} }, wantErr: "mpa is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)

			err := Struct(f)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
