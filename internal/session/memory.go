package session

import (
	"context"
	"sync"
	"time"

	"github.com/PParksung/smart-subscription-manager/internal/models"
)

// MemoryStore хранит сессии в памяти процесса. Используется, когда Redis
// не настроен (локальный запуск), и в тестах. Истёкшие сессии вычищаются
// лениво при обращении.
type MemoryStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]memoryItem
}

type memoryItem struct {
	sess      models.Session
	expiresAt time.Time
}

// NewMemoryStore возвращает хранилище сессий в памяти с заданным TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		items: make(map[string]memoryItem),
	}
}

// Create сохраняет сессию в памяти.
func (s *MemoryStore) Create(_ context.Context, sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[sess.ID] = memoryItem{
		sess:      sess,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Get возвращает сессию по идентификатору или ErrSessionNotFound.
func (s *MemoryStore) Get(_ context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	item, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(item.expiresAt) {
		s.mu.Lock()
		delete(s.items, id)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	sess := item.sess
	return &sess, nil
}

// Delete удаляет сессию из памяти.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}
