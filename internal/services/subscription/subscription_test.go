package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PParksung/smart-subscription-manager/internal/models"
	"github.com/PParksung/smart-subscription-manager/internal/storage/jsonfile"
)

// MockEntryRepository реализует интерфейс EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) AppendEntry(ctx context.Context, entry models.Subscription) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, userID int64) ([]models.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subscription), args.Error(1)
}

func (m *MockEntryRepository) ReadEntry(ctx context.Context, userID, id int64) (*models.Subscription, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockEntryRepository) ReplaceEntry(ctx context.Context, entry models.Subscription) (int, error) {
	args := m.Called(ctx, entry)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) RemoveEntry(ctx context.Context, userID, id int64) (int, error) {
	args := m.Called(ctx, userID, id)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) ReplaceUserEntries(ctx context.Context, userID int64, entries []models.Subscription) error {
	args := m.Called(ctx, userID, entries)
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCreate_Defaults(t *testing.T) {
	repo := new(MockEntryRepository)
	repo.On("AppendEntry", mock.Anything, mock.MatchedBy(func(e models.Subscription) bool {
		return e.ID > 0 && e.UserID == 7 &&
			e.Status == models.StatusActive && e.Currency == models.DefaultCurrency &&
			!e.CreatedAt.IsZero() && e.CreatedAt.Equal(e.UpdatedAt)
	})).Return(nil)

	svc := NewSubscriptionService(repo, newTestLogger())
	entry, err := svc.Create(context.Background(), 7, models.CreateEntryRequest{
		Name:   "Netflix",
		Amount: 17000,
	})

	require.NoError(t, err)
	assert.Equal(t, "Netflix", entry.Name)
	assert.Equal(t, models.StatusActive, entry.Status)
	assert.Equal(t, models.DefaultCurrency, entry.Currency)
	repo.AssertExpectations(t)
}

func TestCreate_ExplicitValuesKept(t *testing.T) {
	repo := new(MockEntryRepository)
	repo.On("AppendEntry", mock.Anything, mock.Anything).Return(nil)

	svc := NewSubscriptionService(repo, newTestLogger())
	entry, err := svc.Create(context.Background(), 7, models.CreateEntryRequest{
		Name:     "Spotify",
		Currency: "USD",
		Status:   models.StatusPaused,
	})

	require.NoError(t, err)
	assert.Equal(t, "USD", entry.Currency)
	assert.Equal(t, models.StatusPaused, entry.Status)
}

func TestRead_NotFound(t *testing.T) {
	repo := new(MockEntryRepository)
	repo.On("ReadEntry", mock.Anything, int64(7), int64(99)).
		Return(nil, jsonfile.ErrEntryNotFound)

	svc := NewSubscriptionService(repo, newTestLogger())
	_, err := svc.Read(context.Background(), 7, 99)

	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestUpdate_PinsIdentity(t *testing.T) {
	existing := &models.Subscription{
		ID: 10, UserID: 7, Name: "Netflix", Amount: 17000,
		Currency: "KRW", Status: models.StatusActive,
	}
	repo := new(MockEntryRepository)
	repo.On("ReadEntry", mock.Anything, int64(7), int64(10)).Return(existing, nil)
	repo.On("ReplaceEntry", mock.Anything, mock.MatchedBy(func(e models.Subscription) bool {
		// id и userId не перетираются, изменилась только сумма
		return e.ID == 10 && e.UserID == 7 && e.Amount == 19000 &&
			e.Name == "Netflix" && !e.UpdatedAt.IsZero()
	})).Return(1, nil)

	newAmount := 19000.0
	svc := NewSubscriptionService(repo, newTestLogger())
	entry, err := svc.Update(context.Background(), 7, 10, models.UpdateEntryRequest{Amount: &newAmount})

	require.NoError(t, err)
	assert.Equal(t, int64(10), entry.ID)
	assert.Equal(t, 19000.0, entry.Amount)
	repo.AssertExpectations(t)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockEntryRepository)
	repo.On("ReadEntry", mock.Anything, int64(7), int64(99)).
		Return(nil, jsonfile.ErrEntryNotFound)

	svc := NewSubscriptionService(repo, newTestLogger())
	name := "Другое имя"
	_, err := svc.Update(context.Background(), 7, 99, models.UpdateEntryRequest{Name: &name})

	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestRemove_NotFound(t *testing.T) {
	repo := new(MockEntryRepository)
	repo.On("RemoveEntry", mock.Anything, int64(7), int64(99)).Return(0, nil)

	svc := NewSubscriptionService(repo, newTestLogger())
	err := svc.Remove(context.Background(), 7, 99)

	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestReorder(t *testing.T) {
	entries := []models.Subscription{
		{ID: 1, UserID: 7, Name: "A"},
		{ID: 2, UserID: 7, Name: "B"},
		{ID: 3, UserID: 7, Name: "C"},
	}
	repo := new(MockEntryRepository)
	repo.On("ListEntries", mock.Anything, int64(7)).Return(entries, nil)
	repo.On("ReplaceUserEntries", mock.Anything, int64(7), mock.Anything).Return(nil)

	svc := NewSubscriptionService(repo, newTestLogger())
	// Дубликат и чужой идентификатор игнорируются, неупомянутая запись идёт в конец
	ordered, err := svc.Reorder(context.Background(), 7, []int64{3, 1, 3, 777})

	require.NoError(t, err)
	require.Len(t, ordered, 3)
	assert.Equal(t, int64(3), ordered[0].ID)
	assert.Equal(t, int64(1), ordered[1].ID)
	assert.Equal(t, int64(2), ordered[2].ID)
	for i, e := range ordered {
		assert.Equal(t, i, e.DisplayOrder)
	}
	repo.AssertExpectations(t)
}
