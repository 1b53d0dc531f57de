package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/txmanager"
)

var bookingColumns = []string{
	"id",
	"appointment_type_id",
	"appointment_type_name",
	"appointment_type_icon",
	"appointment_type_description",
	"duration_minutes",
	"buffer_minutes",
	"booking_date",
	"start_time",
	"customer_name",
	"customer_phone",
	"customer_email",
	"customer_notes",
	"status",
	"created_at",
}

// PostgresRepository репозиторий бронирований в postgres
// Снимок типа записи хранится в строке бронирования, чтобы смена каталога не меняла историю
type PostgresRepository struct {
	db        DBExecutor
	txManager TxManager
	clock     TimeProvider
}

// NewPostgresRepository создает новый экземпляр репозитория бронирований
func NewPostgresRepository(db DBExecutor, txManager TxManager, clock TimeProvider) *PostgresRepository {
	return &PostgresRepository{db: db, txManager: txManager, clock: clock}
}

// ListAll возвращает все бронирования в порядке добавления
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListByDate возвращает бронирования на дату (включая отмененные)
func (r *PostgresRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return r.selectByDate(ctx, date, false)
}

// selectByDate читает бронирования на дату; forUpdate блокирует строки до конца транзакции
func (r *PostgresRepository) selectByDate(ctx context.Context, date time.Time, forUpdate bool) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC")
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByID получает бронирование по ID
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}
	return bookings[0], nil
}

// Append создает новое бронирование
func (r *PostgresRepository) Append(ctx context.Context, nb domain.NewBooking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

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

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			booking.ID,
			booking.AppointmentType.ID,
			booking.AppointmentType.Name,
			booking.AppointmentType.Icon,
			booking.AppointmentType.Description,
			booking.AppointmentType.DurationMinutes,
			booking.AppointmentType.BufferMinutes,
			booking.DateString(),
			booking.Time,
			booking.Customer.Name,
			booking.Customer.Phone,
			booking.Customer.Email,
			booking.Customer.Notes,
			booking.Status,
			booking.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// UpdateStatus обновляет статус бронирования и возвращает обновленную запись
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrBookingNotFound
	}

	return r.GetByID(ctx, id)
}

// AppendIfFree в одной сериализуемой транзакции читает бронирования даты с блокировкой (FOR UPDATE),
// вызывает check и только при его успехе вставляет новое бронирование
// Ошибка check возвращается без обертки
func (r *PostgresRepository) AppendIfFree(ctx context.Context, nb domain.NewBooking, check domain.SlotCheck) (*domain.Booking, error) {
	var created *domain.Booking

	err := r.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		sameDay, err := r.selectByDate(txCtx, nb.Date, true)
		if err != nil {
			return err
		}

		if err := check(sameDay); err != nil {
			return err
		}

		created, err = r.Append(txCtx, nb)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateStatusIfFree меняет статус в одной сериализуемой транзакции с проверкой check
// по бронированиям той же даты
func (r *PostgresRepository) UpdateStatusIfFree(ctx context.Context, id string, status domain.BookingStatus, check domain.StatusCheck) (*domain.Booking, error) {
	var updated *domain.Booking

	err := r.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := r.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		sameDay, err := r.selectByDate(txCtx, current.Date, true)
		if err != nil {
			return err
		}

		if err := check(current, sameDay); err != nil {
			return err
		}

		updated, err = r.UpdateStatus(txCtx, id, status)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete удаляет бронирование
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Clear удаляет все бронирования
func (r *PostgresRepository) Clear(ctx context.Context) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").ToSql()
	if err != nil {
		return fmt.Errorf("%w: Clear - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Clear - execute delete: %w", ErrExecQuery, err)
	}
	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *PostgresRepository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var email, notes sql.NullString

		err := rows.Scan(
			&booking.ID,
			&booking.AppointmentType.ID,
			&booking.AppointmentType.Name,
			&booking.AppointmentType.Icon,
			&booking.AppointmentType.Description,
			&booking.AppointmentType.DurationMinutes,
			&booking.AppointmentType.BufferMinutes,
			&booking.Date,
			&booking.Time,
			&booking.Customer.Name,
			&booking.Customer.Phone,
			&email,
			&notes,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}

		booking.Date = domain.DateOnly(booking.Date)
		booking.Customer.Email = email.String
		booking.Customer.Notes = notes.String

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
