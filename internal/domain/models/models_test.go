package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGenres(t *testing.T) {
	tests := []struct {
		name  string
		input []Genre
		want  []Genre
	}{
		{
			name:  "nil input",
			input: nil,
			want:  []Genre{},
		},
		{
			name:  "sorted by id",
			input: []Genre{{ID: 3, Name: "Мультфильм"}, {ID: 1, Name: "Комедия"}, {ID: 2, Name: "Драма"}},
			want:  []Genre{{ID: 1, Name: "Комедия"}, {ID: 2, Name: "Драма"}, {ID: 3, Name: "Мультфильм"}},
		},
		{
			name:  "duplicates removed, named wins",
			input: []Genre{{ID: 2}, {ID: 1}, {ID: 2, Name: "Драма"}, {ID: 1}},
			want:  []Genre{{ID: 1}, {ID: 2, Name: "Драма"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeGenres(tt.input))
		})
	}
}

func TestGenreIDs(t *testing.T) {
	assert.Equal(t, []int{4, 1}, GenreIDs([]Genre{{ID: 4}, {ID: 1, Name: "Комедия"}}))
	assert.Empty(t, GenreIDs(nil))
}
