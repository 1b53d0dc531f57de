package get_available_slots

import (
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	AppointmentTypeID string    // ID типа записи
	Date              time.Time // Дата (без времени)
}

// Response модель ответа со слотами на дату
type Response struct {
	Date            time.Time
	AppointmentType domain.AppointmentType
	OpeningHours    domain.OpeningHours
	Slots           []domain.TimeSlot  // все слоты сетки, включая недоступные
	Groups          []domain.SlotGroup // доступные слоты по периодам дня
	AvailableCount  int
	NextAvailable   *domain.TimeSlot // nil - свободных слотов нет
}
