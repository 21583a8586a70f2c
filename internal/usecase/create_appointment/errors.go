package create_appointment

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("create_appointment: patient not found")

	// ErrPatientNotOwned возвращается, когда пациент принадлежит другому нутрициологу
	ErrPatientNotOwned = errors.New("create_appointment: patient belongs to another nutritionist")

	// ErrInvalidDate возвращается при попытке записи на прошедшую дату
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrTimeInPast возвращается при попытке записи на прошедшее время сегодня
	ErrTimeInPast = errors.New("create_appointment: appointment time is in the past")

	// ErrTimeConflict возвращается, когда время пересекается с существующей консультацией
	ErrTimeConflict = errors.New("create_appointment: time conflict with existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
