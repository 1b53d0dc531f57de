package models

import (
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
)

// Request модели

// ListRequest запрос на получение бронирований
type ListRequest struct {
	Status *string `json:"status,omitempty"` // nil - все статусы
}

// Response модели

// AppointmentTypeResponse снимок типа записи в бронировании
type AppointmentTypeResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Icon            string `json:"icon,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
	BufferMinutes   int    `json:"bufferMinutes"`
}

// CustomerResponse контактные данные клиента
type CustomerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string                  `json:"id"`
	AppointmentType AppointmentTypeResponse `json:"appointmentType"`
	Date            string                  `json:"date"` // "2026-03-03"
	Time            string                  `json:"time"` // "10:00"
	Customer        CustomerResponse        `json:"customer"`
	Status          string                  `json:"status"`
	CreatedAt       time.Time               `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatsResponse счетчики для панели администратора
type StatsResponse struct {
	Total     int `json:"total"`
	Requested int `json:"requested"`
	Confirmed int `json:"confirmed"`
	Canceled  int `json:"canceled"`
}

// ExportResponse файл выгрузки
type ExportResponse struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID: b.ID,
		AppointmentType: AppointmentTypeResponse{
			ID:              b.AppointmentType.ID,
			Name:            b.AppointmentType.Name,
			Icon:            b.AppointmentType.Icon,
			DurationMinutes: b.AppointmentType.DurationMinutes,
			BufferMinutes:   b.AppointmentType.BufferMinutes,
		},
		Date: b.DateString(),
		Time: b.Time.String(),
		Customer: CustomerResponse{
			Name:  b.Customer.Name,
			Phone: b.Customer.Phone,
			Email: b.Customer.Email,
			Notes: b.Customer.Notes,
		},
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
