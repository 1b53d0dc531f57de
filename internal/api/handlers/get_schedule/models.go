package get_schedule

import (
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	getSchedule "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/get_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Date          string `json:"date"`
	Open          string `json:"open,omitempty"`
	Close         string `json:"close,omitempty"`
	Closed        bool   `json:"closed"`
	IsBusinessDay bool   `json:"isBusinessDay"`
	IsBookable    bool   `json:"isBookable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	return &ScheduleResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		Open:          resp.OpeningHours.Open.String(),
		Close:         resp.OpeningHours.Close.String(),
		Closed:        resp.OpeningHours.Closed,
		IsBusinessDay: resp.IsBusinessDay,
		IsBookable:    resp.IsBookable,
	}
}
