// Package services содержит бизнес-логику для управления подписками пользователя.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/PParksung/smart-subscription-manager/internal/lib/ids"
	"github.com/PParksung/smart-subscription-manager/internal/models"
	"github.com/PParksung/smart-subscription-manager/internal/storage/jsonfile"
)

// ErrEntryNotFound возвращается, когда подписка с заданным ID
// не найдена среди подписок вызывающего пользователя.
var ErrEntryNotFound = errors.New("subscription not found")

// EntryRepository определяет методы для работы с подписками в хранилище.
type EntryRepository interface {
	// AppendEntry добавляет новую подписку.
	AppendEntry(ctx context.Context, entry models.Subscription) error
	// ListEntries возвращает подписки пользователя в порядке хранения.
	ListEntries(ctx context.Context, userID int64) ([]models.Subscription, error)
	// ReadEntry возвращает подписку пользователя по ID.
	ReadEntry(ctx context.Context, userID, id int64) (*models.Subscription, error)
	// ReplaceEntry заменяет запись с тем же ID и возвращает количество заменённых.
	ReplaceEntry(ctx context.Context, entry models.Subscription) (int, error)
	// RemoveEntry удаляет подписку и возвращает количество удалённых записей.
	RemoveEntry(ctx context.Context, userID, id int64) (int, error)
	// ReplaceUserEntries заменяет все подписки пользователя переданным срезом.
	ReplaceUserEntries(ctx context.Context, userID int64, entries []models.Subscription) error
}

// SubscriptionService реализует бизнес-логику работы с подписками.
type SubscriptionService struct {
	repo EntryRepository
	log  *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo EntryRepository, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo: repo,
		log:  log,
	}
}

// Create создает новую подписку пользователя и возвращает её.
// Статус по умолчанию active, валюта по умолчанию KRW.
func (s *SubscriptionService) Create(ctx context.Context, userID int64, req models.CreateEntryRequest) (*models.Subscription, error) {
	const op = "services.subscription.Create"

	now := time.Now().UTC()
	entry := models.Subscription{
		ID:              ids.Next(),
		UserID:          userID,
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Amount:          req.Amount,
		Currency:        req.Currency,
		BillingCycle:    req.BillingCycle,
		NextPaymentDate: req.NextPaymentDate,
		LastPaymentDate: req.LastPaymentDate,
		Status:          req.Status,
		ServiceIcon:     req.ServiceIcon,
		ServiceColor:    req.ServiceColor,
		CancellationURL: req.CancellationURL,
		AutoDetected:    req.AutoDetected,
		PausedUntil:     req.PausedUntil,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if entry.Status == "" {
		entry.Status = models.StatusActive
	}
	if entry.Currency == "" {
		entry.Currency = models.DefaultCurrency
	}

	if err := s.repo.AppendEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created new subscription", slog.Int64("id", entry.ID), slog.Int64("user_id", userID))

	return &entry, nil
}

// List возвращает все подписки пользователя в порядке хранения.
func (s *SubscriptionService) List(ctx context.Context, userID int64) ([]models.Subscription, error) {
	const op = "services.subscription.List"
	entries, err := s.repo.ListEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return entries, nil
}

// Read возвращает подписку пользователя по ID.
func (s *SubscriptionService) Read(ctx context.Context, userID, id int64) (*models.Subscription, error) {
	entry, err := s.repo.ReadEntry(ctx, userID, id)
	if err != nil {
		if errors.Is(err, jsonfile.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// Update накладывает непустые поля запроса поверх существующей записи.
// Поля id и userId всегда сохраняются исходными, updatedAt обновляется.
func (s *SubscriptionService) Update(ctx context.Context, userID, id int64, req models.UpdateEntryRequest) (*models.Subscription, error) {
	const op = "services.subscription.Update"

	entry, err := s.repo.ReadEntry(ctx, userID, id)
	if err != nil {
		if errors.Is(err, jsonfile.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	applyUpdate(entry, req)
	entry.ID = id
	entry.UserID = userID
	entry.UpdatedAt = time.Now().UTC()

	count, err := s.repo.ReplaceEntry(ctx, *entry)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return nil, ErrEntryNotFound
	}

	s.log.Info("updated subscription", slog.Int64("id", id), slog.Int64("user_id", userID))

	return entry, nil
}

// Remove безвозвратно удаляет подписку пользователя.
func (s *SubscriptionService) Remove(ctx context.Context, userID, id int64) error {
	const op = "services.subscription.Remove"

	removed, err := s.repo.RemoveEntry(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if removed == 0 {
		return ErrEntryNotFound
	}

	s.log.Info("deleted subscription", slog.Int64("id", id), slog.Int64("user_id", userID))

	return nil
}

// Reorder выстраивает подписки пользователя в заданном порядке идентификаторов.
// Неупомянутые подписки добавляются после упомянутых в прежнем относительном
// порядке, чужие и неизвестные идентификаторы игнорируются. Поле displayOrder
// пересчитывается заново для всего набора.
func (s *SubscriptionService) Reorder(ctx context.Context, userID int64, orderedIDs []int64) ([]models.Subscription, error) {
	const op = "services.subscription.Reorder"

	entries, err := s.repo.ListEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byID := make(map[int64]models.Subscription, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	ordered := make([]models.Subscription, 0, len(entries))
	mentioned := make(map[int64]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if e, ok := byID[id]; ok && !mentioned[id] {
			ordered = append(ordered, e)
			mentioned[id] = true
		}
	}
	for _, e := range entries {
		if !mentioned[e.ID] {
			ordered = append(ordered, e)
		}
	}

	for i := range ordered {
		ordered[i].DisplayOrder = i
	}

	if err := s.repo.ReplaceUserEntries(ctx, userID, ordered); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("reordered subscriptions", slog.Int64("user_id", userID), slog.Int("count", len(ordered)))

	return ordered, nil
}

// applyUpdate накладывает заполненные поля запроса на существующую запись.
func applyUpdate(entry *models.Subscription, req models.UpdateEntryRequest) {
	if req.Name != nil {
		entry.Name = *req.Name
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Category != nil {
		entry.Category = *req.Category
	}
	if req.Amount != nil {
		entry.Amount = *req.Amount
	}
	if req.Currency != nil {
		entry.Currency = *req.Currency
	}
	if req.BillingCycle != nil {
		entry.BillingCycle = *req.BillingCycle
	}
	if req.NextPaymentDate != nil {
		entry.NextPaymentDate = *req.NextPaymentDate
	}
	if req.LastPaymentDate != nil {
		entry.LastPaymentDate = *req.LastPaymentDate
	}
	if req.Status != nil {
		entry.Status = *req.Status
	}
	if req.ServiceIcon != nil {
		entry.ServiceIcon = *req.ServiceIcon
	}
	if req.ServiceColor != nil {
		entry.ServiceColor = *req.ServiceColor
	}
	if req.CancellationURL != nil {
		entry.CancellationURL = *req.CancellationURL
	}
	if req.AutoDetected != nil {
		entry.AutoDetected = *req.AutoDetected
	}
	if req.PausedUntil != nil {
		entry.PausedUntil = *req.PausedUntil
	}
}
