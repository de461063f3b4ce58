// Package session реализует серверное хранилище сессий.
//
// Клиент держит только идентификатор сессии в cookie; сами данные
// (userId, email, name) живут на стороне сервера — в Redis или в памяти
// процесса, когда Redis не настроен.
package session

import (
	"context"
	"errors"

	"github.com/PParksung/smart-subscription-manager/internal/models"
)

// ErrSessionNotFound возвращается, когда сессия не существует или истекла.
var ErrSessionNotFound = errors.New("session not found")

// Store описывает контракт хранилища сессий.
type Store interface {
	// Create сохраняет сессию; время жизни определяется хранилищем.
	Create(ctx context.Context, sess models.Session) error
	// Get возвращает сессию по идентификатору или ErrSessionNotFound.
	Get(ctx context.Context, id string) (*models.Session, error)
	// Delete удаляет сессию; удаление несуществующей сессии не является ошибкой.
	Delete(ctx context.Context, id string) error
}
