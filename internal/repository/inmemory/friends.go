package inmemory

import (
	"context"
	"fmt"

	"filmorate/internal/domain/models"
)

// FriendAdd добавляет направленную связь user -> friend. Повторный вызов ничего не меняет.
func (m *InmemoryStorage) FriendAdd(ctx context.Context, userID, friendID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := m.lock(ctx)
	defer unlock()

	if err := m.requireUsers(userID, friendID); err != nil {
		return err
	}

	set, ok := m.friends[userID]
	if !ok {
		set = make(idSet)
		m.friends[userID] = set
	}
	set[friendID] = struct{}{}
	return nil
}

func (m *InmemoryStorage) FriendDelete(ctx context.Context, userID, friendID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := m.lock(ctx)
	defer unlock()

	delete(m.friends[userID], friendID)
	return nil
}

func (m *InmemoryStorage) FriendGetByUser(ctx context.Context, userID int64) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	unlock := m.rlock(ctx)
	defer unlock()

	friends := make([]models.User, 0, len(m.friends[userID]))
	for id := range m.friends[userID] {
		if u, ok := m.users[id]; ok {
			friends = append(friends, u)
		}
	}
	sortUsers(friends)
	return friends, nil
}

// FriendGetCommon возвращает пересечение списков друзей обоих пользователей,
// исключая их самих
func (m *InmemoryStorage) FriendGetCommon(ctx context.Context, userID, otherID int64) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	unlock := m.rlock(ctx)
	defer unlock()

	other := m.friends[otherID]
	common := make([]models.User, 0)
	for id := range m.friends[userID] {
		if id == userID || id == otherID {
			continue
		}
		if _, ok := other[id]; !ok {
			continue
		}
		if u, ok := m.users[id]; ok {
			common = append(common, u)
		}
	}
	sortUsers(common)
	return common, nil
}

func (m *InmemoryStorage) requireUsers(ids ...int64) error {
	for _, id := range ids {
		if _, ok := m.users[id]; !ok {
			return fmt.Errorf("%w: user id %d", models.ErrNotFound, id)
		}
	}
	return nil
}
