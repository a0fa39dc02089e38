package inmemory

import (
	"context"
	"fmt"
	"sort"

	"filmorate/internal/domain/models"
)

func (m *InmemoryStorage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	unlock := m.lock(ctx)
	defer unlock()

	for _, u := range m.users {
		if u.Email == user.Email || u.Login == user.Login {
			return models.User{}, fmt.Errorf("%w: user with email %q or login %q", models.ErrConflict, user.Email, user.Login)
		}
	}

	user.ID = nextID(m.users)
	m.users[user.ID] = user
	return user, nil
}

func (m *InmemoryStorage) UserUpdate(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	unlock := m.lock(ctx)
	defer unlock()

	if _, ok := m.users[user.ID]; !ok {
		return models.User{}, fmt.Errorf("%w: user id %d", models.ErrNotFound, user.ID)
	}

	for id, u := range m.users {
		if id == user.ID {
			continue
		}
		if u.Email == user.Email || u.Login == user.Login {
			return models.User{}, fmt.Errorf("%w: user with email %q or login %q", models.ErrConflict, user.Email, user.Login)
		}
	}

	m.users[user.ID] = user
	return user, nil
}

func (m *InmemoryStorage) UserGetByID(ctx context.Context, id int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	unlock := m.rlock(ctx)
	defer unlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("%w: user id %d", models.ErrNotFound, id)
	}
	return user, nil
}

func (m *InmemoryStorage) UserGetAll(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	unlock := m.rlock(ctx)
	defer unlock()

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sortUsers(users)
	return users, nil
}

func (m *InmemoryStorage) UserGetByEmail(ctx context.Context, email string) (models.User, error) {
	return m.userFind(ctx, func(u models.User) bool { return u.Email == email }, "email "+email)
}

func (m *InmemoryStorage) UserGetByLogin(ctx context.Context, login string) (models.User, error) {
	return m.userFind(ctx, func(u models.User) bool { return u.Login == login }, "login "+login)
}

func (m *InmemoryStorage) userFind(ctx context.Context, match func(models.User) bool, what string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	unlock := m.rlock(ctx)
	defer unlock()

	for _, u := range m.users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("%w: user with %s", models.ErrNotFound, what)
}

// UserDelete удаляет пользователя вместе с его лайками и дружбами в обе стороны
func (m *InmemoryStorage) UserDelete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := m.lock(ctx)
	defer unlock()

	if _, ok := m.users[id]; !ok {
		return fmt.Errorf("%w: user id %d", models.ErrNotFound, id)
	}

	delete(m.users, id)
	delete(m.friends, id)
	for _, set := range m.friends {
		delete(set, id)
	}
	for _, set := range m.likes {
		delete(set, id)
	}
	return nil
}

func sortUsers(users []models.User) {
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})
}
