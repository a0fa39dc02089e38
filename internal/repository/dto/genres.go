package dto

import (
	"strconv"
	"strings"

	"filmorate/internal/domain/models"
)

const (
	genreSeparator     = ","
	genrePairSeparator = ":"
)

// ParseGenres разбирает агрегированную колонку жанров вида "1:Комедия,2:Драма".
//
// Пустые сегменты пропускаются молча. Сегменты без двоеточия или с
// нечисловым id не роняют всю строку: они пропускаются и возвращаются
// вторым значением, чтобы вызывающий мог их залогировать.
// Результат отсортирован по id и не содержит повторов.
func ParseGenres(raw string) ([]models.Genre, []string) {
	if strings.TrimSpace(raw) == "" {
		return []models.Genre{}, nil
	}

	var (
		genres  []models.Genre
		skipped []string
	)

	for _, segment := range strings.Split(raw, genreSeparator) {
		if strings.TrimSpace(segment) == "" {
			continue
		}

		idPart, name, ok := strings.Cut(segment, genrePairSeparator)
		if !ok {
			skipped = append(skipped, segment)
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(idPart))
		if err != nil {
			skipped = append(skipped, segment)
			continue
		}

		genres = append(genres, models.Genre{
			ID:   id,
			Name: strings.TrimSpace(name),
		})
	}

	return models.NormalizeGenres(genres), skipped
}
