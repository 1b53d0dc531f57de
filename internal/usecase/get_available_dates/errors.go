package get_available_dates

import "errors"

var (
	// ErrAppointmentTypeNotFound возвращается, когда тип записи отсутствует в каталоге
	ErrAppointmentTypeNotFound = errors.New("get_available_dates: appointment type not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_dates: internal error")
)
