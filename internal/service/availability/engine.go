package availability

import (
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/types"
)

// Rules правила бронирования
type Rules struct {
	SlotStepMinutes int           // шаг сетки слотов
	LeadTime        time.Duration // минимальное время до начала слота (только для сегодняшнего дня)
	MaxDaysAhead    int           // горизонт бронирования в днях
}

// DefaultRules правила по умолчанию
func DefaultRules() Rules {
	return Rules{
		SlotStepMinutes: domain.DefaultSlotStepMinutes,
		LeadTime:        domain.DefaultLeadTimeHours * time.Hour,
		MaxDaysAhead:    domain.DefaultMaxDaysAhead,
	}
}

// Engine чистый движок доступности: расписание, слоты, конфликты, валидация
// Не хранит состояние бронирований - они передаются явно
type Engine struct {
	schedule     domain.WeeklySchedule
	rules        Rules
	timeProvider TimeProvider
}

// NewEngine создает движок доступности
func NewEngine(schedule domain.WeeklySchedule, rules Rules, timeProvider TimeProvider) *Engine {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	if rules.SlotStepMinutes <= 0 {
		rules.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	return &Engine{
		schedule:     schedule,
		rules:        rules,
		timeProvider: timeProvider,
	}
}

// Rules возвращает действующие правила
func (e *Engine) Rules() Rules {
	return e.rules
}

// Now возвращает текущее время провайдера
func (e *Engine) Now() time.Time {
	return e.timeProvider.Now()
}

// Today возвращает текущую календарную дату
func (e *Engine) Today() time.Time {
	return domain.DateOnly(e.timeProvider.Now())
}

// OpeningHours возвращает часы работы на дату по недельному шаблону
// Праздники не учитываются
func (e *Engine) OpeningHours(date time.Time) domain.OpeningHours {
	return e.schedule.For(date)
}

// IsBusinessDay проверяет, что мастерская работает в эту дату
func (e *Engine) IsBusinessDay(date time.Time) bool {
	return !e.schedule.For(date).Closed
}

// IsDateInPast проверяет, что дата раньше сегодняшней
func (e *Engine) IsDateInPast(date time.Time) bool {
	return domain.DateOnly(date).Before(e.Today())
}

// IsDateTooFarAhead проверяет, что дата дальше горизонта бронирования
func (e *Engine) IsDateTooFarAhead(date time.Time) bool {
	maxDate := e.Today().AddDate(0, 0, e.rules.MaxDaysAhead)
	return domain.DateOnly(date).After(maxDate)
}

// SatisfiesLeadTime проверяет минимальное время до начала слота
// Lead time - абсолютная длительность от текущего момента, применяется к сегодняшнему дню;
// прошедшие дни не проходят проверку, будущие дни проходят всегда
func (e *Engine) SatisfiesLeadTime(date time.Time, start types.TimeString) bool {
	now := e.timeProvider.Now()
	day := domain.DateOnly(date)
	today := domain.DateOnly(now)

	if day.After(today) {
		return true
	}
	if day.Before(today) {
		return false
	}

	slotStart := start.On(day, now.Location())
	return !slotStart.Before(now.Add(e.rules.LeadTime))
}

// AvailableDates возвращает рабочие дни от сегодня до горизонта включительно
func (e *Engine) AvailableDates() []time.Time {
	today := e.Today()
	dates := make([]time.Time, 0, e.rules.MaxDaysAhead+1)

	for i := 0; i <= e.rules.MaxDaysAhead; i++ {
		date := today.AddDate(0, 0, i)
		if e.IsBusinessDay(date) {
			dates = append(dates, date)
		}
	}

	return dates
}
