package inmemory

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"filmorate/internal/domain/models"
	"filmorate/internal/repository"
)

var _ repository.Storage = (*InmemoryStorage)(nil)

type keyTxType struct{}

type idSet map[int64]struct{}

// InmemoryStorage хранит все сущности в картах под одним мьютексом.
// WithinTx удерживает мьютекс на все время транзакции, а вызовы
// с транзакционным контекстом выполняются без повторной блокировки.
type InmemoryStorage struct {
	mu sync.RWMutex

	users      map[int64]models.User
	films      map[int64]models.Film // без жанров, они в filmGenres
	genres     map[int]models.Genre
	mpa        map[int]models.Mpa
	filmGenres map[int64]map[int]struct{}
	likes      map[int64]idSet // film_id -> user_id
	friends    map[int64]idSet // user_id -> friend_id
}

func NewStorage() *InmemoryStorage {
	m := &InmemoryStorage{}
	m.reset()
	return m
}

func (m *InmemoryStorage) reset() {
	m.users = make(map[int64]models.User)
	m.films = make(map[int64]models.Film)
	m.filmGenres = make(map[int64]map[int]struct{})
	m.likes = make(map[int64]idSet)
	m.friends = make(map[int64]idSet)

	m.genres = make(map[int]models.Genre, len(defaultGenres))
	for _, g := range defaultGenres {
		m.genres[g.ID] = g
	}
	m.mpa = make(map[int]models.Mpa, len(defaultMpa))
	for _, r := range defaultMpa {
		m.mpa[r.ID] = r
	}
}

// Справочники совпадают с данными миграций postgres
var (
	defaultGenres = []models.Genre{
		{ID: 1, Name: "Комедия"},
		{ID: 2, Name: "Драма"},
		{ID: 3, Name: "Мультфильм"},
		{ID: 4, Name: "Триллер"},
		{ID: 5, Name: "Документальный"},
		{ID: 6, Name: "Боевик"},
	}

	defaultMpa = []models.Mpa{
		{ID: 1, Name: "G"},
		{ID: 2, Name: "PG"},
		{ID: 3, Name: "PG-13"},
		{ID: 4, Name: "R"},
		{ID: 5, Name: "NC-17"},
	}
)

func (m *InmemoryStorage) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(keyTxType{}).(*InmemoryStorage)
	return ok && owner == m
}

func (m *InmemoryStorage) lock(ctx context.Context) func() {
	if m.inTx(ctx) {
		return func() {}
	}
	m.mu.Lock()
	return m.mu.Unlock
}

func (m *InmemoryStorage) rlock(ctx context.Context) func() {
	if m.inTx(ctx) {
		return func() {}
	}
	m.mu.RLock()
	return m.mu.RUnlock
}

// WithinTx выполняет fn атомарно: при ошибке или панике все изменения,
// сделанные внутри fn, откатываются. Вложенный вызов выполняется в
// рамках внешней транзакции.
func (m *InmemoryStorage) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if m.inTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.snapshot()
	ctx = context.WithValue(ctx, keyTxType{}, m)

	defer func() {
		if p := recover(); p != nil {
			m.restore(snap)
			panic(p)
		}
		if err != nil {
			m.restore(snap)
		}
	}()

	err = fn(ctx)
	return err
}

type snapshot struct {
	users      map[int64]models.User
	films      map[int64]models.Film
	filmGenres map[int64]map[int]struct{}
	likes      map[int64]idSet
	friends    map[int64]idSet
}

func (m *InmemoryStorage) snapshot() snapshot {
	s := snapshot{
		users:      maps.Clone(m.users),
		films:      maps.Clone(m.films),
		filmGenres: make(map[int64]map[int]struct{}, len(m.filmGenres)),
		likes:      cloneSets(m.likes),
		friends:    cloneSets(m.friends),
	}
	for id, set := range m.filmGenres {
		s.filmGenres[id] = maps.Clone(set)
	}
	return s
}

func (m *InmemoryStorage) restore(s snapshot) {
	m.users = s.users
	m.films = s.films
	m.filmGenres = s.filmGenres
	m.likes = s.likes
	m.friends = s.friends
}

func cloneSets(src map[int64]idSet) map[int64]idSet {
	dst := make(map[int64]idSet, len(src))
	for k, v := range src {
		dst[k] = maps.Clone(v)
	}
	return dst
}

func (m *InmemoryStorage) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

func (m *InmemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reset()
	return nil
}

func nextID[V any](data map[int64]V) int64 {
	var maxID int64
	for id := range data {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
