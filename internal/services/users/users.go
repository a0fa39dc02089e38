package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"filmorate/internal/domain/models"
	"filmorate/internal/domain/validation"
	"filmorate/internal/logger"
)

/*
UserStorage - хранилище пользователей и связей дружбы
*/

//go:generate mockgen -source=users.go -destination=../../mocks/mock_user_storage.go -package=mocks
type UserStorage interface {
	UserCreate(ctx context.Context, user models.User) (models.User, error)
	UserUpdate(ctx context.Context, user models.User) (models.User, error)
	UserGetByID(ctx context.Context, id int64) (models.User, error)
	UserGetAll(ctx context.Context) ([]models.User, error)
	UserGetByEmail(ctx context.Context, email string) (models.User, error)
	UserGetByLogin(ctx context.Context, login string) (models.User, error)
	UserDelete(ctx context.Context, id int64) error

	FriendAdd(ctx context.Context, userID, friendID int64) error
	FriendDelete(ctx context.Context, userID, friendID int64) error
	FriendGetByUser(ctx context.Context, userID int64) ([]models.User, error)
	FriendGetCommon(ctx context.Context, userID, otherID int64) ([]models.User, error)

	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// FriendshipMode определяет, как хранится дружба
type FriendshipMode string

const (
	// FriendshipDirectional - одна строка user -> friend, обратная связь не создается
	FriendshipDirectional FriendshipMode = "directional"
	// FriendshipMutual - обе строки пишутся и удаляются вместе
	FriendshipMutual FriendshipMode = "mutual"
)

// UserService реализует бизнес-логику пользователей и дружбы
type UserService struct {
	storage UserStorage
	mode    FriendshipMode
	now     func() time.Time
}

type Option func(*UserService)

func WithFriendshipMode(mode FriendshipMode) Option {
	return func(s *UserService) {
		s.mode = mode
	}
}

// WithClock подменяет источник текущего времени, нужен тестам
func WithClock(now func() time.Time) Option {
	return func(s *UserService) {
		s.now = now
	}
}

func NewServiceUsers(storage UserStorage, opts ...Option) *UserService {
	s := &UserService{
		storage: storage,
		mode:    FriendshipDirectional,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create проверяет пользователя и сохраняет его. Пустое имя заменяется логином.
func (s *UserService) Create(ctx context.Context, user models.User) (models.User, error) {
	user.ID = 0
	if err := s.validate(user); err != nil {
		return models.User{}, err
	}
	user = withDefaultName(user)

	var created models.User
	err := s.storage.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkUnique(ctx, user); err != nil {
			return err
		}

		var err error
		created, err = s.storage.UserCreate(ctx, user)
		return err
	})
	if err != nil {
		return models.User{}, s.wrap(err, "failed to create user")
	}

	logger.FromContext(ctx).Debug().
		Int64("user_id", created.ID).
		Str("login", created.Login).
		Msg("user created")

	return created, nil
}

// Update полностью заменяет сохраненного пользователя присланным
func (s *UserService) Update(ctx context.Context, user models.User) (models.User, error) {
	if user.ID <= 0 {
		return models.User{}, fmt.Errorf("%w: id is required", models.ErrValidation)
	}
	if err := s.validate(user); err != nil {
		return models.User{}, err
	}
	user = withDefaultName(user)

	var updated models.User
	err := s.storage.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.UserGetByID(ctx, user.ID); err != nil {
			return err
		}
		if err := s.checkUnique(ctx, user); err != nil {
			return err
		}

		var err error
		updated, err = s.storage.UserUpdate(ctx, user)
		return err
	})
	if err != nil {
		return models.User{}, s.wrap(err, "failed to update user")
	}

	return updated, nil
}

func (s *UserService) FindByID(ctx context.Context, id int64) (models.User, error) {
	user, err := s.storage.UserGetByID(ctx, id)
	if err != nil {
		return models.User{}, s.wrap(err, "failed to get user")
	}
	return user, nil
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	users, err := s.storage.UserGetAll(ctx)
	if err != nil {
		return nil, s.wrap(err, "failed to get users")
	}
	return users, nil
}

// Delete удаляет пользователя вместе с его дружбами и лайками
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.storage.UserDelete(ctx, id); err != nil {
		return s.wrap(err, "failed to delete user")
	}
	return nil
}

func (s *UserService) AddFriend(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		return fmt.Errorf("%w: user cannot befriend themselves", models.ErrValidation)
	}

	err := s.storage.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.requireUsers(ctx, userID, friendID); err != nil {
			return err
		}
		if err := s.storage.FriendAdd(ctx, userID, friendID); err != nil {
			return err
		}
		if s.mode == FriendshipMutual {
			return s.storage.FriendAdd(ctx, friendID, userID)
		}
		return nil
	})
	if err != nil {
		return s.wrap(err, "failed to add friend")
	}
	return nil
}

func (s *UserService) DeleteFriend(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		return fmt.Errorf("%w: user cannot unfriend themselves", models.ErrValidation)
	}

	err := s.storage.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.requireUsers(ctx, userID, friendID); err != nil {
			return err
		}
		if err := s.storage.FriendDelete(ctx, userID, friendID); err != nil {
			return err
		}
		if s.mode == FriendshipMutual {
			return s.storage.FriendDelete(ctx, friendID, userID)
		}
		return nil
	})
	if err != nil {
		return s.wrap(err, "failed to delete friend")
	}
	return nil
}

func (s *UserService) GetUserFriends(ctx context.Context, userID int64) ([]models.User, error) {
	if _, err := s.storage.UserGetByID(ctx, userID); err != nil {
		return nil, s.wrap(err, "failed to get friends")
	}

	friends, err := s.storage.FriendGetByUser(ctx, userID)
	if err != nil {
		return nil, s.wrap(err, "failed to get friends")
	}
	return friends, nil
}

func (s *UserService) FindCommonFriends(ctx context.Context, userID, otherID int64) ([]models.User, error) {
	if err := s.requireUsers(ctx, userID, otherID); err != nil {
		return nil, s.wrap(err, "failed to get common friends")
	}

	common, err := s.storage.FriendGetCommon(ctx, userID, otherID)
	if err != nil {
		return nil, s.wrap(err, "failed to get common friends")
	}
	return common, nil
}

func (s *UserService) validate(user models.User) error {
	if err := validation.Struct(user); err != nil {
		return err
	}
	if user.Birthday.After(s.today()) {
		return fmt.Errorf("%w: birthday must not be in the future", models.ErrValidation)
	}
	return nil
}

// today - календарная дата сервера в виде полуночи UTC, как и даты из JSON
func (s *UserService) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// checkUnique ищет другого пользователя с тем же email или логином.
// Совпадение с самим собой при обновлении не считается дубликатом.
func (s *UserService) checkUnique(ctx context.Context, user models.User) error {
	existing, err := s.storage.UserGetByEmail(ctx, user.Email)
	switch {
	case err == nil && existing.ID != user.ID:
		return fmt.Errorf("%w: email %s is already in use", models.ErrValidation, user.Email)
	case err != nil && !errors.Is(err, models.ErrNotFound):
		return err
	}

	existing, err = s.storage.UserGetByLogin(ctx, user.Login)
	switch {
	case err == nil && existing.ID != user.ID:
		return fmt.Errorf("%w: login %s is already in use", models.ErrValidation, user.Login)
	case err != nil && !errors.Is(err, models.ErrNotFound):
		return err
	}

	return nil
}

func (s *UserService) requireUsers(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if _, err := s.storage.UserGetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// wrap добавляет контекст к ошибке. Конфликт уникальности из хранилища
// для клиента остается ошибкой валидации.
func (s *UserService) wrap(err error, msg string) error {
	if errors.Is(err, models.ErrConflict) {
		return fmt.Errorf("%w: %s: %v", models.ErrValidation, msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func withDefaultName(user models.User) models.User {
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	return user
}
