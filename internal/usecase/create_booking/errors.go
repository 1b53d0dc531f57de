package create_booking

import "errors"

var (
	// ErrAppointmentTypeNotFound возвращается, когда тип записи отсутствует в каталоге
	ErrAppointmentTypeNotFound = errors.New("create_booking: appointment type not found")

	// ErrSlotNotAvailable возвращается, когда слот заняли между проверкой и сохранением
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
