package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/infra/kvstore"
	bookingRepo "github.com/m04kA/BikeWerkstatt-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/availability"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/types"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

// AppendIfFree возвращает из ожиданий бронирования даты на момент записи,
// прогоняет через них check и только после этого отдает результат записи
func (m *MockBookingRepository) AppendIfFree(ctx context.Context, booking domain.NewBooking, check domain.SlotCheck) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	sameDay, _ := args.Get(0).([]*domain.Booking)
	if err := check(sameDay); err != nil {
		return nil, err
	}
	if args.Get(1) == nil {
		return nil, args.Error(2)
	}
	return args.Get(1).(*domain.Booking), args.Error(2)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) BookingCreated(appointmentTypeID string) { m.Called(appointmentTypeID) }
func (m *MockMetrics) BookingConflict()                        { m.Called() }
func (m *MockMetrics) ValidationFailed(field string)           { m.Called(field) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	// Понедельник 09:00
	now     = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	tuesday = time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	repair  = domain.AppointmentType{ID: "reparatur", Name: "Reparatur / Inspektion", DurationMinutes: 30, BufferMinutes: 10}
	catalog = domain.Catalog{repair}
)

func testSchedule() domain.WeeklySchedule {
	weekday := domain.OpeningHours{Open: "10:00", Close: "18:00"}
	return domain.WeeklySchedule{
		time.Sunday:    {Closed: true},
		time.Monday:    weekday,
		time.Tuesday:   weekday,
		time.Wednesday: weekday,
		time.Thursday:  weekday,
		time.Friday:    weekday,
		time.Saturday:  {Open: "10:00", Close: "14:00"},
	}
}

func newUseCase(repo *MockBookingRepository, metrics *MockMetrics) *UseCase {
	engine := availability.NewEngine(testSchedule(), availability.DefaultRules(), &availability.FixedTimeProvider{At: now})
	return NewUseCase(repo, engine, catalog, 0, metrics, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		AppointmentTypeID: "reparatur",
		Date:              "2026-03-03",
		Time:              "10:00",
		Customer:          domain.Customer{Name: " Jo Lee ", Phone: "+49 170 1234567"},
	}
}

func existing(id, start string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		AppointmentType: repair,
		Date:            tuesday,
		Time:            types.TimeString(start),
		Status:          status,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	metrics := new(MockMetrics)

	repo.On("ListByDate", mock.Anything, tuesday).Return([]*domain.Booking{}, nil).Once()
	repo.On("AppendIfFree", mock.Anything, mock.MatchedBy(func(nb domain.NewBooking) bool {
		return nb.Status == domain.StatusRequested &&
			nb.Customer.Name == "Jo Lee" &&
			nb.Time == "10:00" &&
			nb.AppointmentType.ID == "reparatur"
	})).Return([]*domain.Booking{}, &domain.Booking{
		ID:              "bk_1",
		AppointmentType: repair,
		Date:            tuesday,
		Time:            "10:00",
		Customer:        domain.Customer{Name: "Jo Lee", Phone: "+49 170 1234567"},
		Status:          domain.StatusRequested,
		CreatedAt:       now,
	}, nil)
	metrics.On("BookingCreated", "reparatur").Return()

	resp, err := newUseCase(repo, metrics).Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "bk_1", resp.ID)
	assert.Equal(t, domain.StatusRequested, resp.Status)
	repo.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestUseCase_Execute_UnknownType(t *testing.T) {
	repo := new(MockBookingRepository)
	req := validRequest()
	req.AppointmentTypeID = "wellness"

	_, err := newUseCase(repo, new(MockMetrics)).Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAppointmentTypeNotFound)
	repo.AssertNotCalled(t, "ListByDate", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	repo := new(MockBookingRepository)
	metrics := new(MockMetrics)
	metrics.On("ValidationFailed", mock.Anything).Return()

	req := &Request{
		Date:     "",
		Customer: domain.Customer{Name: "A", Phone: "123", Email: "bad"},
	}

	_, err := newUseCase(repo, metrics).Execute(context.Background(), req)

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.HasField(domain.FieldAppointmentType))
	assert.True(t, verrs.HasField(domain.FieldDate))
	assert.True(t, verrs.HasField(domain.FieldName))
	assert.True(t, verrs.HasField(domain.FieldPhone))
	assert.True(t, verrs.HasField(domain.FieldEmail))
	metrics.AssertNumberOfCalls(t, "ValidationFailed", len(verrs))
	repo.AssertNotCalled(t, "AppendIfFree", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_ConflictDetectedByValidation(t *testing.T) {
	repo := new(MockBookingRepository)
	metrics := new(MockMetrics)
	metrics.On("ValidationFailed", domain.FieldTime).Return()

	repo.On("ListByDate", mock.Anything, tuesday).
		Return([]*domain.Booking{existing("bk_0", "09:45", domain.StatusConfirmed)}, nil).Once()

	req := validRequest()
	req.Time = "10:15"
	// 09:45 + 40 = 10:25 > 10:15
	_, err := newUseCase(repo, metrics).Execute(context.Background(), req)

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 1)
	assert.Equal(t, domain.FieldTime, verrs[0].Field)
}

func TestUseCase_Execute_CommitTimeConflict(t *testing.T) {
	repo := new(MockBookingRepository)
	metrics := new(MockMetrics)

	// Слот свободен при валидации, но занят к моменту сохранения
	repo.On("ListByDate", mock.Anything, tuesday).Return([]*domain.Booking{}, nil).Once()
	repo.On("AppendIfFree", mock.Anything, mock.Anything).
		Return([]*domain.Booking{existing("bk_other", "10:00", domain.StatusRequested)}, nil, nil).Once()
	metrics.On("BookingConflict").Return()

	_, err := newUseCase(repo, metrics).Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	repo.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

// slowStore добавляет задержку чтения, расширяя окно между проверкой и записью
type slowStore struct {
	kvstore.Store
}

func (s slowStore) Get(ctx context.Context, key string) ([]byte, error) {
	time.Sleep(time.Millisecond)
	return s.Store.Get(ctx, key)
}

func TestUseCase_Execute_ConcurrentSameSlot(t *testing.T) {
	ctx := context.Background()
	repo := bookingRepo.NewKVRepository(slowStore{Store: kvstore.NewMemory()}, "", &availability.FixedTimeProvider{At: now})
	engine := availability.NewEngine(testSchedule(), availability.DefaultRules(), &availability.FixedTimeProvider{At: now})
	uc := NewUseCase(repo, engine, catalog, 0, nil, nopLogger{})

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(ctx, validRequest())
			if err != nil {
				// проигравшие гонку получают либо конфликт при записи, либо ошибку валидации времени
				var verrs domain.ValidationErrors
				if !errors.As(err, &verrs) {
					assert.ErrorIs(t, err, ErrSlotNotAvailable)
				}
				return
			}

			mu.Lock()
			created++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)

	onDate, err := repo.ListByDate(ctx, tuesday)
	require.NoError(t, err)
	assert.Len(t, onDate, 1)
}

func TestUseCase_Execute_RebookAfterCancel(t *testing.T) {
	repo := new(MockBookingRepository)
	metrics := new(MockMetrics)

	canceled := []*domain.Booking{existing("bk_old", "10:00", domain.StatusCanceled)}
	repo.On("ListByDate", mock.Anything, tuesday).Return(canceled, nil).Once()
	repo.On("AppendIfFree", mock.Anything, mock.Anything).Return(canceled, &domain.Booking{
		ID: "bk_new", AppointmentType: repair, Date: tuesday, Time: "10:00", Status: domain.StatusRequested,
	}, nil)
	metrics.On("BookingCreated", "reparatur").Return()

	resp, err := newUseCase(repo, metrics).Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "bk_new", resp.ID)
}

func TestUseCase_Execute_StorageErrors(t *testing.T) {
	t.Run("list fails", func(t *testing.T) {
		repo := new(MockBookingRepository)
		repo.On("ListByDate", mock.Anything, tuesday).Return(nil, errors.New("disk full"))

		_, err := newUseCase(repo, new(MockMetrics)).Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("append fails", func(t *testing.T) {
		repo := new(MockBookingRepository)
		repo.On("ListByDate", mock.Anything, tuesday).Return([]*domain.Booking{}, nil)
		repo.On("AppendIfFree", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil, errors.New("disk full"))

		_, err := newUseCase(repo, new(MockMetrics)).Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestUseCase_Execute_SubmitDelayRespectsContext(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("ListByDate", mock.Anything, tuesday).Return([]*domain.Booking{}, nil)

	engine := availability.NewEngine(testSchedule(), availability.DefaultRules(), &availability.FixedTimeProvider{At: now})
	uc := NewUseCase(repo, engine, catalog, time.Hour, nil, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, context.Canceled)
	repo.AssertNotCalled(t, "AppendIfFree", mock.Anything, mock.Anything)
}
