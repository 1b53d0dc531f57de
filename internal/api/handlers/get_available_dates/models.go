package get_available_dates

import (
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	getAvailableDates "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/get_available_dates"
)

// DateResponse рабочий день в календаре записи
type DateResponse struct {
	Date           string `json:"date"`
	Open           string `json:"open"`
	Close          string `json:"close"`
	AvailableSlots *int   `json:"availableSlots,omitempty"`
}

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Dates []DateResponse `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	out := &AvailableDatesResponse{Dates: make([]DateResponse, 0, len(resp.Dates))}
	for _, d := range resp.Dates {
		out.Dates = append(out.Dates, DateResponse{
			Date:           d.Date.Format(domain.DateFormat),
			Open:           d.OpeningHours.Open.String(),
			Close:          d.OpeningHours.Close.String(),
			AvailableSlots: d.AvailableSlots,
		})
	}
	return out
}
