// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PParksung/smart-subscription-manager/internal/lib/ids"
	"github.com/PParksung/smart-subscription-manager/internal/lib/password"
	"github.com/PParksung/smart-subscription-manager/internal/models"
	"github.com/PParksung/smart-subscription-manager/internal/session"
	"github.com/PParksung/smart-subscription-manager/internal/storage/jsonfile"
)

// Ошибки бизнес-уровня аутентификации.
var (
	// ErrEmailTaken возвращается при регистрации на уже занятый email.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials возвращается при любой неудаче входа.
	// Текст намеренно не различает неизвестный email и неверный пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// AppendUser сохраняет нового пользователя.
	AppendUser(ctx context.Context, user models.User) error
	// FindUserByEmail возвращает пользователя по email или ошибку, если не найден.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход, выход и серверные сессии.
type AuthService struct {
	users    UserRepository
	sessions session.Store
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, sessions session.Store, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		log:      log,
	}
}

// Signup создает нового пользователя с хэшированием пароля.
// Занятость email проверяется линейным поиском по коллекции.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.PublicUser, error) {
	const op = "services.auth.Signup"

	_, err := s.users.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, jsonfile.ErrUserNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           ids.Next(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.AppendUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("registered new user", slog.Int64("id", user.ID))

	public := user.Public()
	return &public, nil
}

// Login проверяет пароль пользователя и создает серверную сессию.
// Любое несовпадение пары email+пароль даёт одинаковую ошибку ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.Session, error) {
	const op = "services.auth.Login"

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, jsonfile.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	sess := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user logged in", slog.Int64("user_id", user.ID), slog.String("session_id", sess.ID))

	return &sess, nil
}

// Logout удаляет серверную сессию. Удаление несуществующей сессии не ошибка.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	const op = "services.auth.Logout"
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
