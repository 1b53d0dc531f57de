package bookings

import (
	"context"
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
// UpdateStatusIfFree выполняет проверку и запись атомарно относительно других записей хранилища
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatusIfFree(ctx context.Context, id string, status domain.BookingStatus, check domain.StatusCheck) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	StatusChanged(status string)
}

// TimeProvider интерфейс для получения текущего времени (имя файла выгрузки)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
