package shopinfo

import "github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"

// Business контактные данные мастерской
type Business struct {
	Name    string
	Address string
	City    string
	Phone   string
	Email   string
}

// Rules правила бронирования для отображения клиенту
type Rules struct {
	SlotStepMinutes int
	LeadTimeHours   int
	MaxDaysAhead    int
}

// Source статическая конфигурация мастерской
type Source struct {
	Business Business
	Schedule domain.WeeklySchedule
	Catalog  domain.Catalog
	Rules    Rules
}
