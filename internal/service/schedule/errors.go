package schedule

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация расписания не найдена
	ErrConfigNotFound = errors.New("service.schedule: schedule config not found")

	// ErrEmptyWorkingDays возвращается, когда список рабочих дней пуст
	ErrEmptyWorkingDays = errors.New("service.schedule: working days must not be empty")

	// ErrInvalidWorkingDay возвращается при неизвестном дне недели
	ErrInvalidWorkingDay = errors.New("service.schedule: invalid working day")

	// ErrInvalidHoursOrder возвращается, когда начало рабочего дня не раньше конца
	ErrInvalidHoursOrder = errors.New("service.schedule: work start must be before work end")

	// ErrLunchOutOfBounds возвращается, когда перерыв выходит за рабочие часы
	ErrLunchOutOfBounds = errors.New("service.schedule: lunch break must be within working hours")

	// ErrInvalidDuration возвращается при недопустимой длительности консультации
	ErrInvalidDuration = errors.New("service.schedule: invalid appointment duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.schedule: internal error")
)
