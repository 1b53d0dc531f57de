package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
// AppendIfFree выполняет проверку и запись атомарно относительно других записей хранилища
type BookingRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	AppendIfFree(ctx context.Context, booking domain.NewBooking, check domain.SlotCheck) (*domain.Booking, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	BookingCreated(appointmentTypeID string)
	BookingConflict()
	ValidationFailed(field string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
