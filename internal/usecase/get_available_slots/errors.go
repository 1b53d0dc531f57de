package get_available_slots

import "errors"

var (
	// ErrAppointmentTypeNotFound возвращается, когда тип записи отсутствует в каталоге
	ErrAppointmentTypeNotFound = errors.New("get_available_slots: appointment type not found")

	// ErrDateInPast возвращается для даты раньше сегодняшней
	ErrDateInPast = errors.New("get_available_slots: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами горизонта бронирования
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
