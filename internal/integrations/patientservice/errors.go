package patientservice

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("patient not found")

	// ErrPatientNotOwned возвращается, когда пациент принадлежит другому нутрициологу
	ErrPatientNotOwned = errors.New("patient belongs to another nutritionist")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("patientservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("patientservice client: invalid response")
)
