package models

import "github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"

// BusinessResponse контактные данные и часы работы мастерской
type BusinessResponse struct {
	Name         string             `json:"name"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
	OpeningHours []DayHoursResponse `json:"openingHours"`
	Rules        RulesResponse      `json:"rules"`
}

// DayHoursResponse часы работы дня недели
type DayHoursResponse struct {
	Weekday int    `json:"weekday"` // 0 = воскресенье
	Day     string `json:"day"`     // "Montag"
	Open    string `json:"open,omitempty"`
	Close   string `json:"close,omitempty"`
	Closed  bool   `json:"closed"`
}

// RulesResponse правила бронирования, которые видит клиент
type RulesResponse struct {
	SlotStepMinutes int `json:"slotStepMinutes"`
	LeadTimeHours   int `json:"leadTimeHours"`
	MaxDaysAhead    int `json:"maxDaysAhead"`
}

// AppointmentTypesResponse каталог типов записи
type AppointmentTypesResponse struct {
	AppointmentTypes []domain.AppointmentType `json:"appointmentTypes"`
}
