package dto

import "filmorate/internal/domain/models"

type (
	Film struct {
		ID          int64   `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		ReleaseDate Date    `json:"releaseDate"`
		Duration    int64   `json:"duration"`
		Mpa         *Mpa    `json:"mpa"`
		Genres      []Genre `json:"genres"`
	}

	Genre struct {
		ID   int    `json:"id"`
		Name string `json:"name,omitempty"`
	}

	Mpa struct {
		ID   int    `json:"id"`
		Name string `json:"name,omitempty"`
	}
)

func (f Film) ToDomain() models.Film {
	film := models.Film{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate.Time,
		Duration:    f.Duration,
	}
	if f.Mpa != nil {
		film.Mpa = f.Mpa.ToDomain()
	}

	film.Genres = make([]models.Genre, 0, len(f.Genres))
	for _, g := range f.Genres {
		film.Genres = append(film.Genres, g.ToDomain())
	}
	return film
}

func FilmFromDomain(f models.Film) Film {
	mpa := MpaFromDomain(f.Mpa)
	return Film{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: NewDate(f.ReleaseDate),
		Duration:    f.Duration,
		Mpa:         &mpa,
		Genres:      GenresFromDomain(f.Genres),
	}
}

func FilmsFromDomain(films []models.Film) []Film {
	res := make([]Film, 0, len(films))
	for _, f := range films {
		res = append(res, FilmFromDomain(f))
	}
	return res
}

func (g Genre) ToDomain() models.Genre {
	return models.Genre{ID: g.ID, Name: g.Name}
}

func GenreFromDomain(g models.Genre) Genre {
	return Genre{ID: g.ID, Name: g.Name}
}

func GenresFromDomain(genres []models.Genre) []Genre {
	res := make([]Genre, 0, len(genres))
	for _, g := range genres {
		res = append(res, GenreFromDomain(g))
	}
	return res
}

func (m Mpa) ToDomain() models.Mpa {
	return models.Mpa{ID: m.ID, Name: m.Name}
}

func MpaFromDomain(m models.Mpa) Mpa {
	return Mpa{ID: m.ID, Name: m.Name}
}

func MpasFromDomain(ratings []models.Mpa) []Mpa {
	res := make([]Mpa, 0, len(ratings))
	for _, m := range ratings {
		res = append(res, MpaFromDomain(m))
	}
	return res
}
