package availability

import (
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/types"
)

// GenerateSlots генерирует слоты на день для типа записи
// Слоты идут с начала работы с шагом SlotStepMinutes; генерация останавливается
// перед слотом, у которого start+duration+buffer выходит за время закрытия.
// Порядок - по возрастанию времени, это часть контракта (группировка не пересортировывает)
func (e *Engine) GenerateSlots(date time.Time, appointmentType domain.AppointmentType, bookings []*domain.Booking) []domain.TimeSlot {
	hours := e.OpeningHours(date)
	if hours.Closed {
		return []domain.TimeSlot{}
	}

	window := hours.Window()
	total := appointmentType.TotalMinutes()
	step := e.rules.SlotStepMinutes

	slots := make([]domain.TimeSlot, 0)
	if total <= 0 {
		return slots
	}

	// Конфликты считаем только по активным бронированиям этой даты
	dayBookings := ActiveOnDate(bookings, date)

	for current := window.Start; current+total <= window.End; current += step {
		start, err := types.NewTimeStringFromMinutes(current)
		if err != nil {
			break
		}

		slot := domain.TimeSlot{Time: start, Available: true}

		switch {
		case !e.SatisfiesLeadTime(date, start):
			slot.Available = false
			slot.Reason = domain.SlotReasonLeadTime
		case HasConflict(dayBookings, date, start, appointmentType.DurationMinutes, appointmentType.BufferMinutes, ""):
			slot.Available = false
			slot.Reason = domain.SlotReasonConflict
		}

		slots = append(slots, slot)
	}

	return slots
}

// FitsSlotGrid сообщает, что start - одно из времен, которые GenerateSlots выдает
// для этого типа записи: на сетке от начала работы и с окончанием (вместе с буфером) не позже закрытия
func (e *Engine) FitsSlotGrid(date time.Time, start types.TimeString, appointmentType domain.AppointmentType) bool {
	hours := e.OpeningHours(date)
	if hours.Closed {
		return false
	}

	window := hours.Window()
	total := appointmentType.TotalMinutes()
	minutes := start.Minutes()

	return total > 0 &&
		minutes >= window.Start &&
		minutes+total <= window.End &&
		(minutes-window.Start)%e.rules.SlotStepMinutes == 0
}

// AvailableOnly возвращает только доступные слоты, порядок сохраняется
func AvailableOnly(slots []domain.TimeSlot) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			result = append(result, s)
		}
	}
	return result
}

// NextAvailable возвращает первый доступный слот
func NextAvailable(slots []domain.TimeSlot) (domain.TimeSlot, bool) {
	for _, s := range slots {
		if s.Available {
			return s, true
		}
	}
	return domain.TimeSlot{}, false
}

// CountAvailable считает доступные слоты
func CountAvailable(slots []domain.TimeSlot) int {
	return len(AvailableOnly(slots))
}

// GroupByPeriod раскладывает доступные слоты по периодам дня (Vormittag/Mittag/Nachmittag)
// по часу начала. Пустые периоды пропускаются
func GroupByPeriod(slots []domain.TimeSlot) []domain.SlotGroup {
	order := []string{domain.PeriodMorning, domain.PeriodMidday, domain.PeriodAfternoon}
	buckets := make(map[string][]domain.TimeSlot, len(order))

	for _, s := range AvailableOnly(slots) {
		period := s.Period()
		buckets[period] = append(buckets[period], s)
	}

	groups := make([]domain.SlotGroup, 0, len(order))
	for _, label := range order {
		if len(buckets[label]) == 0 {
			continue
		}
		groups = append(groups, domain.SlotGroup{Label: label, Slots: buckets[label]})
	}

	return groups
}
