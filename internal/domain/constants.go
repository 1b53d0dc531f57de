package domain

// Default booking rules
const (
	DefaultSlotStepMinutes = 15
	DefaultLeadTimeHours   = 4
	DefaultMaxDaysAhead    = 30
)

// Business validation constants
const (
	MinCustomerNameLength  = 2
	MinCustomerPhoneLength = 6
	MaxNotesLength         = 1000
)

// Time format constants
const (
	TimeFormat      = "15:04"      // HH:MM
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	DateFormatShort = "02.01.2006" // DD.MM.YYYY
)

// Slot display periods, bucketed by slot start hour
const (
	PeriodMorning   = "Vormittag"
	PeriodMidday    = "Mittag"
	PeriodAfternoon = "Nachmittag"

	MiddayStartHour    = 12
	AfternoonStartHour = 14
)

// Validation field tags
const (
	FieldAppointmentType = "appointmentType"
	FieldDate            = "date"
	FieldTime            = "time"
	FieldName            = "name"
	FieldPhone           = "phone"
	FieldEmail           = "email"
	FieldNotes           = "notes"
	FieldSubmit          = "submit"
)

// ActiveStatuses statuses that occupy a slot
var ActiveStatuses = []BookingStatus{
	StatusRequested,
	StatusConfirmed,
}

// InactiveStatuses statuses excluded from conflict checks
var InactiveStatuses = []BookingStatus{
	StatusCanceled,
}
