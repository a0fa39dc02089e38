package inmemory

import (
	"context"
	"fmt"

	"filmorate/internal/domain/models"
)

// LikeAdd идемпотентен: один пользователь - не больше одного лайка фильму
func (m *InmemoryStorage) LikeAdd(ctx context.Context, filmID, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := m.lock(ctx)
	defer unlock()

	if _, ok := m.films[filmID]; !ok {
		return fmt.Errorf("%w: film id %d", models.ErrNotFound, filmID)
	}
	if err := m.requireUsers(userID); err != nil {
		return err
	}

	set, ok := m.likes[filmID]
	if !ok {
		set = make(idSet)
		m.likes[filmID] = set
	}
	set[userID] = struct{}{}
	return nil
}

func (m *InmemoryStorage) LikeDelete(ctx context.Context, filmID, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := m.lock(ctx)
	defer unlock()

	delete(m.likes[filmID], userID)
	return nil
}
