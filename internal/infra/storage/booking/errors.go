package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrStorage возвращается при ошибке чтения или записи key-value хранилища
	ErrStorage = errors.New("booking.repository: storage error")

	// ErrCorruptData возвращается, когда сохраненный список бронирований не удается разобрать
	ErrCorruptData = errors.New("booking.repository: corrupt booking data")
)
