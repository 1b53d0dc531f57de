package availability

import (
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/types"
)

// HasConflict проверяет, пересекается ли интервал [start, start+duration+buffer)
// с занятым интервалом любого активного бронирования на эту дату
// excludeID исключает бронирование из проверки (повторная проверка существующего бронирования)
//
// Примеры (длительность 30, буфер 0):
// - бронирование 10:00-10:30, запрос 10:15 → конфликт
// - бронирование 10:00-10:30, запрос 10:30 → НЕТ конфликта (граничат)
// - бронирование 10:00-10:30 отменено, запрос 10:00 → НЕТ конфликта
func HasConflict(
	bookings []*domain.Booking,
	date time.Time,
	start types.TimeString,
	durationMinutes int,
	bufferMinutes int,
	excludeID string,
) bool {
	return findConflict(bookings, date, requestedInterval(start, durationMinutes, bufferMinutes), excludeID) != nil
}

// FindConflict возвращает первое бронирование, с которым пересекается запрошенный интервал
func FindConflict(
	bookings []*domain.Booking,
	date time.Time,
	start types.TimeString,
	durationMinutes int,
	bufferMinutes int,
	excludeID string,
) *domain.Booking {
	return findConflict(bookings, date, requestedInterval(start, durationMinutes, bufferMinutes), excludeID)
}

// ActiveOnDate возвращает активные бронирования на дату
func ActiveOnDate(bookings []*domain.Booking, date time.Time) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() && b.OnDate(date) {
			result = append(result, b)
		}
	}
	return result
}

func requestedInterval(start types.TimeString, durationMinutes, bufferMinutes int) domain.Interval {
	startMinutes := start.Minutes()
	return domain.Interval{Start: startMinutes, End: startMinutes + durationMinutes + bufferMinutes}
}

func findConflict(bookings []*domain.Booking, date time.Time, requested domain.Interval, excludeID string) *domain.Booking {
	for _, b := range bookings {
		// Отмененные бронирования остаются в хранилище, но слот не блокируют
		if !b.IsActive() || !b.OnDate(date) {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if requested.Overlaps(b.OccupiedInterval()) {
			return b
		}
	}
	return nil
}
