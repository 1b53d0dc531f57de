package get_available_dates

import (
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
)

// Request модель запроса
// Если тип записи не указан, количество свободных слотов не считается
type Request struct {
	AppointmentTypeID string
}

// Response рабочие дни внутри горизонта бронирования
type Response struct {
	Dates []Date
}

// Date рабочий день
type Date struct {
	Date           time.Time
	OpeningHours   domain.OpeningHours
	AvailableSlots *int // nil, если тип записи не указан
}
