package availability

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/types"
)

var (
	phonePattern = regexp.MustCompile(`^[+\d\s\-()]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// BookingInput данные бронирования в том виде, в котором их прислал клиент
type BookingInput struct {
	AppointmentType *domain.AppointmentType // nil - тип не выбран
	Date            string                  // YYYY-MM-DD
	Time            string                  // HH:MM
	Customer        domain.Customer
}

// ValidateBooking проверяет все бизнес-правила без досрочного выхода
// и возвращает плоский список ошибок по полям
// bookings - текущие бронирования (достаточно бронирований на дату)
func (e *Engine) ValidateBooking(in BookingInput, bookings []*domain.Booking) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	// 1. Тип записи
	if in.AppointmentType == nil {
		errs.Add(domain.FieldAppointmentType, msgAppointmentTypeRequired)
	}

	// 2. Дата
	date, dateOK := e.validateDate(in.Date, &errs)

	// 3. Время - только если есть дата и тип записи
	if dateOK && in.AppointmentType != nil {
		e.validateTime(date, in.Time, *in.AppointmentType, bookings, &errs)
	}

	// 4. Контактные данные
	errs = append(errs, ValidateCustomer(in.Customer)...)

	return errs
}

// ValidateDate проверяет дату отдельно (шаг выбора даты в мастере записи)
func (e *Engine) ValidateDate(raw string) (time.Time, domain.ValidationErrors) {
	errs := domain.ValidationErrors{}
	date, _ := e.validateDate(raw, &errs)
	return date, errs
}

// validateDate возвращает распарсенную дату и признак, что дату можно использовать для проверки времени
func (e *Engine) validateDate(raw string, errs *domain.ValidationErrors) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs.Add(domain.FieldDate, msgDateRequired)
		return time.Time{}, false
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		errs.Add(domain.FieldDate, msgDateInvalid)
		return time.Time{}, false
	}

	if e.IsDateInPast(date) {
		errs.Add(domain.FieldDate, msgDateInPast)
	}

	if e.IsDateTooFarAhead(date) {
		errs.Add(domain.FieldDate, fmt.Sprintf(msgDateTooFarAhead, e.rules.MaxDaysAhead))
	}

	if !e.IsBusinessDay(date) {
		errs.Add(domain.FieldDate, msgDateClosed)
	}

	return date, true
}

func (e *Engine) validateTime(
	date time.Time,
	raw string,
	appointmentType domain.AppointmentType,
	bookings []*domain.Booking,
	errs *domain.ValidationErrors,
) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs.Add(domain.FieldTime, msgTimeRequired)
		return
	}

	start, err := types.NewTimeStringFromString(raw)
	if err != nil {
		errs.Add(domain.FieldTime, msgTimeInvalid)
		return
	}

	// Закрытый день уже отмечен ошибкой даты
	if !e.OpeningHours(date).Closed && !e.FitsSlotGrid(date, start, appointmentType) {
		errs.Add(domain.FieldTime, msgTimeOffGrid)
	}

	if !e.SatisfiesLeadTime(date, start) {
		errs.Add(domain.FieldTime, fmt.Sprintf(msgTimeLeadTime, leadTimeHours(e.rules.LeadTime)))
	}

	if HasConflict(bookings, date, start, appointmentType.DurationMinutes, appointmentType.BufferMinutes, "") {
		errs.Add(domain.FieldTime, msgTimeConflict)
	}
}

// ValidateCustomer проверяет контактные данные клиента
func ValidateCustomer(c domain.Customer) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	if utf8.RuneCountInString(strings.TrimSpace(c.Name)) < domain.MinCustomerNameLength {
		errs.Add(domain.FieldName, msgNameTooShort)
	}

	if utf8.RuneCountInString(strings.TrimSpace(c.Phone)) < domain.MinCustomerPhoneLength {
		errs.Add(domain.FieldPhone, msgPhoneTooShort)
	} else if !phonePattern.MatchString(c.Phone) {
		errs.Add(domain.FieldPhone, msgPhoneInvalidChars)
	}

	// Email необязателен, но если указан - должен быть корректным
	if strings.TrimSpace(c.Email) != "" && !emailPattern.MatchString(c.Email) {
		errs.Add(domain.FieldEmail, msgEmailInvalid)
	}

	if utf8.RuneCountInString(c.Notes) > domain.MaxNotesLength {
		errs.Add(domain.FieldNotes, fmt.Sprintf(msgNotesTooLong, domain.MaxNotesLength))
	}

	return errs
}

func leadTimeHours(d time.Duration) int {
	return int(math.Ceil(d.Hours()))
}
