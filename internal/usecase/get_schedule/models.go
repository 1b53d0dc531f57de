package get_schedule

import (
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
)

// Request модель запроса часов работы
type Request struct {
	Date time.Time // Дата (без времени)
}

// Response часы работы на дату
type Response struct {
	Date          time.Time
	OpeningHours  domain.OpeningHours
	IsBusinessDay bool
	IsBookable    bool // рабочий день внутри горизонта бронирования
}
