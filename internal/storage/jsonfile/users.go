package jsonfile

import (
	"context"
	"fmt"

	"github.com/PParksung/smart-subscription-manager/internal/models"
)

// AppendUser добавляет нового пользователя в коллекцию и перезаписывает файл.
func (s *Storage) AppendUser(ctx context.Context, user models.User) error {
	const op = "storage.AppendUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	users = append(users, user)
	if err := s.writeUsers(users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FindUserByEmail возвращает пользователя по email линейным поиском
// или ErrUserNotFound, если такого email нет.
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.FindUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
}

// FindUserByID возвращает пользователя по идентификатору
// или ErrUserNotFound, если такого пользователя нет.
func (s *Storage) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.FindUserByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
}
