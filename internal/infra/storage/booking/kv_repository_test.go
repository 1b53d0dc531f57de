package booking

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/infra/kvstore"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

var (
	createdAt = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repair    = domain.AppointmentType{ID: "reparatur", Name: "Reparatur / Inspektion", Icon: "🔧", DurationMinutes: 30, BufferMinutes: 10}
	idPattern = regexp.MustCompile(`^bk_\d+_[0-9a-f]{7}$`)
)

func newKVRepository() (*KVRepository, *kvstore.Memory) {
	store := kvstore.NewMemory()
	return NewKVRepository(store, "", fixedClock{at: createdAt}), store
}

func newBooking(date time.Time, start string) domain.NewBooking {
	return domain.NewBooking{
		AppointmentType: repair,
		Date:            date,
		Time:            mustTime(start),
		Customer:        domain.Customer{Name: "Jo Lee", Phone: "+49 170 1234567", Notes: "Kette\nquietscht"},
		Status:          domain.StatusRequested,
	}
}

func TestKVRepository_EmptyStore(t *testing.T) {
	repo, _ := newKVRepository()

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotNil(t, all)
}

func TestKVRepository_AppendRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newKVRepository()
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	created, err := repo.Append(ctx, newBooking(date, "10:00"))
	require.NoError(t, err)
	assert.Regexp(t, idPattern, created.ID)
	assert.True(t, created.CreatedAt.Equal(createdAt))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	got := all[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, repair, got.AppointmentType)
	assert.Equal(t, "2026-03-03", got.DateString())
	assert.Equal(t, "10:00", got.Time.String())
	assert.Equal(t, "Kette\nquietscht", got.Customer.Notes)
	assert.Equal(t, domain.StatusRequested, got.Status)
	assert.True(t, got.CreatedAt.Equal(createdAt))
}

func TestKVRepository_ListByDate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newKVRepository()
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	wednesday := tuesday.AddDate(0, 0, 1)

	_, err := repo.Append(ctx, newBooking(tuesday, "10:00"))
	require.NoError(t, err)
	_, err = repo.Append(ctx, newBooking(wednesday, "11:00"))
	require.NoError(t, err)

	onTuesday, err := repo.ListByDate(ctx, tuesday)
	require.NoError(t, err)
	require.Len(t, onTuesday, 1)
	assert.Equal(t, "10:00", onTuesday[0].Time.String())
}

func TestKVRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo, _ := newKVRepository()

	created, err := repo.Append(ctx, newBooking(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), "10:00"))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, created.ID, domain.StatusCanceled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, updated.Status)

	// отмененное бронирование остается в списке
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.StatusCanceled, all[0].Status)

	_, err = repo.UpdateStatus(ctx, "bk_missing", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

var errSlotTaken = errors.New("slot taken")

// slowStore добавляет задержку чтения, расширяя окно между проверкой и записью
type slowStore struct {
	kvstore.Store
	delay time.Duration
}

func (s slowStore) Get(ctx context.Context, key string) ([]byte, error) {
	time.Sleep(s.delay)
	return s.Store.Get(ctx, key)
}

// rejectActiveAt отклоняет запись, если на это время уже есть активное бронирование
func rejectActiveAt(start string) domain.SlotCheck {
	return func(sameDay []*domain.Booking) error {
		for _, b := range sameDay {
			if b.IsActive() && b.Time.String() == start {
				return errSlotTaken
			}
		}
		return nil
	}
}

func TestKVRepository_AppendIfFree(t *testing.T) {
	ctx := context.Background()
	repo, _ := newKVRepository()
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	var seen []*domain.Booking
	first, err := repo.AppendIfFree(ctx, newBooking(date, "10:00"), func(sameDay []*domain.Booking) error {
		seen = sameDay
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, seen)

	_, err = repo.AppendIfFree(ctx, newBooking(date, "10:00"), rejectActiveAt("10:00"))
	assert.ErrorIs(t, err, errSlotTaken)

	// другая дата проверяется отдельно
	_, err = repo.AppendIfFree(ctx, newBooking(date.AddDate(0, 0, 1), "10:00"), rejectActiveAt("10:00"))
	require.NoError(t, err)

	// отмененное бронирование слот не блокирует
	_, err = repo.UpdateStatus(ctx, first.ID, domain.StatusCanceled)
	require.NoError(t, err)
	_, err = repo.AppendIfFree(ctx, newBooking(date, "10:00"), rejectActiveAt("10:00"))
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestKVRepository_AppendIfFree_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := slowStore{Store: kvstore.NewMemory(), delay: time.Millisecond}
	repo := NewKVRepository(store, "", fixedClock{at: createdAt})
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		taken   int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AppendIfFree(ctx, newBooking(date, "10:00"), rejectActiveAt("10:00"))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, errSlotTaken):
				taken++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, taken)

	onDate, err := repo.ListByDate(ctx, date)
	require.NoError(t, err)
	assert.Len(t, onDate, 1)
}

func TestKVRepository_UpdateStatusIfFree(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	t.Run("check sees current and same day bookings", func(t *testing.T) {
		repo, _ := newKVRepository()
		canceled, err := repo.Append(ctx, newBooking(date, "10:00"))
		require.NoError(t, err)
		_, err = repo.UpdateStatus(ctx, canceled.ID, domain.StatusCanceled)
		require.NoError(t, err)
		_, err = repo.Append(ctx, newBooking(date, "10:00"))
		require.NoError(t, err)
		_, err = repo.Append(ctx, newBooking(date.AddDate(0, 0, 1), "10:00"))
		require.NoError(t, err)

		_, err = repo.UpdateStatusIfFree(ctx, canceled.ID, domain.StatusConfirmed,
			func(current *domain.Booking, sameDay []*domain.Booking) error {
				assert.Equal(t, canceled.ID, current.ID)
				assert.Len(t, sameDay, 2)
				return errSlotTaken
			})
		assert.ErrorIs(t, err, errSlotTaken)

		got, err := repo.GetByID(ctx, canceled.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCanceled, got.Status, "rejected update is not written")
	})

	t.Run("not found", func(t *testing.T) {
		repo, _ := newKVRepository()
		called := false
		_, err := repo.UpdateStatusIfFree(ctx, "bk_missing", domain.StatusConfirmed,
			func(*domain.Booking, []*domain.Booking) error {
				called = true
				return nil
			})
		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.False(t, called)
	})
}

func TestKVRepository_UpdateStatusIfFree_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := slowStore{Store: kvstore.NewMemory(), delay: time.Millisecond}
	repo := NewKVRepository(store, "", fixedClock{at: createdAt})
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	// несколько отмененных бронирований на одно время восстанавливаются параллельно
	const workers = 8
	ids := make([]string, 0, workers)
	for i := 0; i < workers; i++ {
		b, err := repo.Append(ctx, newBooking(date, "10:00"))
		require.NoError(t, err)
		_, err = repo.UpdateStatus(ctx, b.ID, domain.StatusCanceled)
		require.NoError(t, err)
		ids = append(ids, b.ID)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, _ = repo.UpdateStatusIfFree(ctx, id, domain.StatusRequested,
				func(current *domain.Booking, sameDay []*domain.Booking) error {
					for _, b := range sameDay {
						if b.ID != current.ID && b.IsActive() {
							return errSlotTaken
						}
					}
					return nil
				})
		}(id)
	}
	wg.Wait()

	onDate, err := repo.ListByDate(ctx, date)
	require.NoError(t, err)
	active := 0
	for _, b := range onDate {
		if b.IsActive() {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestKVRepository_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	repo, _ := newKVRepository()
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	first, err := repo.Append(ctx, newBooking(date, "10:00"))
	require.NoError(t, err)
	_, err = repo.Append(ctx, newBooking(date, "11:00"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), ErrBookingNotFound)

	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	require.NoError(t, repo.Clear(ctx))
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestKVRepository_CorruptData(t *testing.T) {
	ctx := context.Background()
	repo, store := newKVRepository()
	require.NoError(t, store.Set(ctx, DefaultKey, []byte("{not json")))

	_, err := repo.ListAll(ctx)
	assert.ErrorIs(t, err, ErrCorruptData)

	_, err = repo.Append(ctx, newBooking(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), "10:00"))
	assert.ErrorIs(t, err, ErrCorruptData, "corrupt data is never overwritten")
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := newID(createdAt)
		assert.Regexp(t, idPattern, id)
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}
