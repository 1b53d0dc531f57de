package create_booking

import (
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	createBooking "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/create_booking"
)

// CustomerRequest контактные данные клиента
type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	AppointmentTypeID string          `json:"appointmentTypeId"`
	Date              string          `json:"date"` // "2026-03-03"
	Time              string          `json:"time"` // "10:00"
	Customer          CustomerRequest `json:"customer"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string                 `json:"id"`
	AppointmentType domain.AppointmentType `json:"appointmentType"`
	Date            string                 `json:"date"`
	Time            string                 `json:"time"`
	Customer        CustomerRequest        `json:"customer"`
	Status          string                 `json:"status"`
	CreatedAt       string                 `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и время не разбираются здесь: ошибки формата возвращаются как ошибки полей
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		AppointmentTypeID: r.AppointmentTypeID,
		Date:              r.Date,
		Time:              r.Time,
		Customer: domain.Customer{
			Name:  r.Customer.Name,
			Phone: r.Customer.Phone,
			Email: r.Customer.Email,
			Notes: r.Customer.Notes,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		AppointmentType: resp.AppointmentType,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.Time.String(),
		Customer: CustomerRequest{
			Name:  resp.Customer.Name,
			Phone: resp.Customer.Phone,
			Email: resp.Customer.Email,
			Notes: resp.Customer.Notes,
		},
		Status:    string(resp.Status),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
