package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда консультация не найдена
	ErrAppointmentNotFound = errors.New("service.appointments: appointment not found")

	// ErrAccessDenied возвращается при попытке доступа к чужой консультации
	ErrAccessDenied = errors.New("service.appointments: access denied")

	// ErrCannotCancel возвращается, когда консультацию нельзя отменить
	ErrCannotCancel = errors.New("service.appointments: appointment cannot be cancelled")

	// ErrInvalidStatus возвращается при недопустимом переходе статуса
	ErrInvalidStatus = errors.New("service.appointments: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.appointments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.appointments: internal error")
)
