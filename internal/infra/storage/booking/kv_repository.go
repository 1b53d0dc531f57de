package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/infra/kvstore"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/types"
)

// DefaultKey ключ, под которым хранится список бронирований
const DefaultKey = "bikewerkstatt_bookings"

// bookingRecord JSON представление бронирования в key-value хранилище
type bookingRecord struct {
	ID              string                 `json:"id"`
	AppointmentType domain.AppointmentType `json:"appointmentType"`
	Date            string                 `json:"date"`
	Time            string                 `json:"time"`
	Customer        domain.Customer        `json:"customer"`
	Status          domain.BookingStatus   `json:"status"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// KVRepository хранит все бронирования одним JSON массивом под одним ключом
// Операции read-modify-write сериализуются мьютексом внутри процесса
type KVRepository struct {
	mu    sync.Mutex
	store kvstore.Store
	key   string
	clock TimeProvider
}

// NewKVRepository создает репозиторий поверх key-value хранилища
func NewKVRepository(store kvstore.Store, key string, clock TimeProvider) *KVRepository {
	if key == "" {
		key = DefaultKey
	}
	return &KVRepository{store: store, key: key, clock: clock}
}

// ListAll возвращает все бронирования в порядке добавления
// Отсутствующий ключ означает пустой список
func (r *KVRepository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

// ListByDate возвращает бронирования на дату (включая отмененные)
func (r *KVRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	return filterByDate(all, date), nil
}

// GetByID возвращает бронирование по идентификатору
func (r *KVRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range all {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

// Append сохраняет новое бронирование, присваивая ID и CreatedAt
func (r *KVRepository) Append(ctx context.Context, nb domain.NewBooking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	return r.appendLocked(ctx, all, nb)
}

// AppendIfFree под одной блокировкой читает бронирования даты, вызывает check
// и только при его успехе сохраняет новое бронирование
// Ошибка check возвращается без обертки
func (r *KVRepository) AppendIfFree(ctx context.Context, nb domain.NewBooking, check domain.SlotCheck) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	if err := check(filterByDate(all, nb.Date)); err != nil {
		return nil, err
	}

	return r.appendLocked(ctx, all, nb)
}

// UpdateStatus меняет статус бронирования
func (r *KVRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	return r.UpdateStatusIfFree(ctx, id, status, func(*domain.Booking, []*domain.Booking) error {
		return nil
	})
}

// UpdateStatusIfFree меняет статус под одной блокировкой с проверкой check
// по бронированиям той же даты
func (r *KVRepository) UpdateStatusIfFree(ctx context.Context, id string, status domain.BookingStatus, check domain.StatusCheck) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var current *domain.Booking
	for _, b := range all {
		if b.ID == id {
			current = b
			break
		}
	}
	if current == nil {
		return nil, ErrBookingNotFound
	}

	if err := check(current, filterByDate(all, current.Date)); err != nil {
		return nil, err
	}

	current.Status = status
	if err := r.save(ctx, all); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete удаляет бронирование
func (r *KVRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	filtered := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	if len(filtered) == len(all) {
		return ErrBookingNotFound
	}

	return r.save(ctx, filtered)
}

// Clear удаляет все бронирования
func (r *KVRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("%w: Clear: %v", ErrStorage, err)
	}
	return nil
}

// appendLocked вызывается под r.mu
func (r *KVRepository) appendLocked(ctx context.Context, all []*domain.Booking, nb domain.NewBooking) (*domain.Booking, error) {
	now := r.clock.Now()
	booking := &domain.Booking{
		ID:              newID(now),
		AppointmentType: nb.AppointmentType,
		Date:            domain.DateOnly(nb.Date),
		Time:            nb.Time,
		Customer:        nb.Customer,
		Status:          nb.Status,
		CreatedAt:       now,
	}

	all = append(all, booking)
	if err := r.save(ctx, all); err != nil {
		return nil, err
	}

	return booking, nil
}

func filterByDate(all []*domain.Booking, date time.Time) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for _, b := range all {
		if b.OnDate(date) {
			result = append(result, b)
		}
	}
	return result
}

func (r *KVRepository) load(ctx context.Context) ([]*domain.Booking, error) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return make([]*domain.Booking, 0), nil
		}
		return nil, fmt.Errorf("%w: load: %v", ErrStorage, err)
	}

	var records []bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCorruptData, err)
	}

	bookings := make([]*domain.Booking, 0, len(records))
	for _, rec := range records {
		b, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: booking %s: %v", ErrCorruptData, rec.ID, err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *KVRepository) save(ctx context.Context, bookings []*domain.Booking) error {
	records := make([]bookingRecord, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, toRecord(b))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrStorage, err)
	}

	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("%w: save: %v", ErrStorage, err)
	}
	return nil
}

func toRecord(b *domain.Booking) bookingRecord {
	return bookingRecord{
		ID:              b.ID,
		AppointmentType: b.AppointmentType,
		Date:            b.DateString(),
		Time:            b.Time.String(),
		Customer:        b.Customer,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
}

func (rec bookingRecord) toDomain() (*domain.Booking, error) {
	date, err := time.Parse(domain.DateFormat, rec.Date)
	if err != nil {
		return nil, err
	}
	start, err := types.NewTimeStringFromString(rec.Time)
	if err != nil {
		return nil, err
	}

	return &domain.Booking{
		ID:              rec.ID,
		AppointmentType: rec.AppointmentType,
		Date:            date,
		Time:            start,
		Customer:        rec.Customer,
		Status:          rec.Status,
		CreatedAt:       rec.CreatedAt,
	}, nil
}
