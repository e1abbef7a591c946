package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается при нарушении уникального индекса
	// (professional_id, booking_date) для неотменённых бронирований
	ErrSlotTaken = errors.New("booking.repository: professional already booked on this date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrEncodeServices возвращается при ошибке сериализации списка услуг
	ErrEncodeServices = errors.New("booking.repository: failed to encode services")
)
