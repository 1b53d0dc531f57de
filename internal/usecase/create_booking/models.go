package create_booking

import (
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
// Дата и время передаются строками: их разбор - часть валидации
type Request struct {
	AppointmentTypeID string // ID типа записи из каталога
	Date              string // YYYY-MM-DD
	Time              string // HH:MM
	Customer          domain.Customer
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string
	AppointmentType domain.AppointmentType
	Date            time.Time
	Time            types.TimeString
	Customer        domain.Customer
	Status          domain.BookingStatus
	CreatedAt       time.Time
}
