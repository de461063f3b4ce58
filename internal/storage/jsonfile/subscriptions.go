package jsonfile

import (
	"context"
	"fmt"

	"github.com/PParksung/smart-subscription-manager/internal/models"
)

// AppendEntry добавляет новую подписку в коллекцию и перезаписывает файл.
func (s *Storage) AppendEntry(ctx context.Context, entry models.Subscription) error {
	const op = "storage.AppendEntry"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	entries = append(entries, entry)
	if err := s.writeEntries(entries); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListEntries возвращает все подписки пользователя в порядке хранения в файле.
func (s *Storage) ListEntries(ctx context.Context, userID int64) ([]models.Subscription, error) {
	const op = "storage.ListEntries"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []models.Subscription
	for i := range entries {
		if entries[i].UserID == userID {
			result = append(result, entries[i])
		}
	}
	return result, nil
}

// ReadEntry возвращает подписку пользователя по её ID
// или ErrEntryNotFound, если такой подписки у пользователя нет.
func (s *Storage) ReadEntry(ctx context.Context, userID, id int64) (*models.Subscription, error) {
	const op = "storage.ReadEntry"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range entries {
		if entries[i].UserID == userID && entries[i].ID == id {
			e := entries[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrEntryNotFound)
}

// ReplaceEntry заменяет запись с тем же ID и владельцем на переданную
// и возвращает количество заменённых записей.
func (s *Storage) ReplaceEntry(ctx context.Context, entry models.Subscription) (int, error) {
	const op = "storage.ReplaceEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	replaced := 0
	for i := range entries {
		if entries[i].UserID == entry.UserID && entries[i].ID == entry.ID {
			entries[i] = entry
			replaced++
		}
	}
	if replaced == 0 {
		return 0, nil
	}
	if err := s.writeEntries(entries); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return replaced, nil
}

// RemoveEntry удаляет подписку пользователя по ID и возвращает
// количество удалённых записей. Коллекция перезаписывается только
// при фактическом удалении.
func (s *Storage) RemoveEntry(ctx context.Context, userID, id int64) (int, error) {
	const op = "storage.RemoveEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	remaining := entries[:0:0]
	removed := 0
	for i := range entries {
		if entries[i].UserID == userID && entries[i].ID == id {
			removed++
			continue
		}
		remaining = append(remaining, entries[i])
	}
	if removed == 0 {
		return 0, nil
	}
	if err := s.writeEntries(remaining); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return removed, nil
}

// ReplaceUserEntries заменяет все подписки пользователя переданным срезом,
// сохраняя его порядок; подписки остальных пользователей не затрагиваются.
func (s *Storage) ReplaceUserEntries(ctx context.Context, userID int64, userEntries []models.Subscription) error {
	const op = "storage.ReplaceUserEntries"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	result := entries[:0:0]
	for i := range entries {
		if entries[i].UserID != userID {
			result = append(result, entries[i])
		}
	}
	result = append(result, userEntries...)
	if err := s.writeEntries(result); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
