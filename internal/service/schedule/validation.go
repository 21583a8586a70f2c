package schedule

import (
	"fmt"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
)

// validateConfig валидирует конфигурацию расписания целиком
// Порядок проверок: рабочие дни, рабочие часы, перерыв, длительность, буфер
func validateConfig(config *domain.ScheduleConfig) error {
	if config.NutritionistID <= 0 {
		return fmt.Errorf("%w: nutritionistID must be positive", ErrInvalidInput)
	}

	if err := validateWorkingDays(config.WorkingDays); err != nil {
		return err
	}

	if err := validateWorkingHours(config); err != nil {
		return err
	}

	if err := validateLunchBreak(config); err != nil {
		return err
	}

	return validateDurations(config)
}

// validateWorkingDays проверяет, что список рабочих дней непуст,
// содержит только известные дни недели и не содержит дубликатов
func validateWorkingDays(days []domain.Weekday) error {
	if len(days) == 0 {
		return ErrEmptyWorkingDays
	}

	seen := make(map[domain.Weekday]struct{}, len(days))
	for _, day := range days {
		if !day.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidWorkingDay, day)
		}
		if _, ok := seen[day]; ok {
			return fmt.Errorf("%w: duplicate working day %q", ErrInvalidInput, day)
		}
		seen[day] = struct{}{}
	}

	return nil
}

// validateWorkingHours проверяет формат рабочих часов и их порядок
func validateWorkingHours(config *domain.ScheduleConfig) error {
	if err := config.WorkStart.Validate(); err != nil {
		return fmt.Errorf("%w: invalid workStart: %v", ErrInvalidInput, err)
	}
	if err := config.WorkEnd.Validate(); err != nil {
		return fmt.Errorf("%w: invalid workEnd: %v", ErrInvalidInput, err)
	}

	if !config.WorkStart.IsBefore(config.WorkEnd) {
		return ErrInvalidHoursOrder
	}

	return nil
}

// validateLunchBreak проверяет перерыв: формат, порядок и вхождение в рабочие часы
// При выключенном перерыве времена перерыва игнорируются
func validateLunchBreak(config *domain.ScheduleConfig) error {
	if !config.LunchEnabled {
		return nil
	}

	if err := config.LunchStart.Validate(); err != nil {
		return fmt.Errorf("%w: invalid lunchStart: %v", ErrInvalidInput, err)
	}
	if err := config.LunchEnd.Validate(); err != nil {
		return fmt.Errorf("%w: invalid lunchEnd: %v", ErrInvalidInput, err)
	}

	if !config.LunchStart.IsBefore(config.LunchEnd) {
		return fmt.Errorf("%w: lunchStart must be before lunchEnd", ErrLunchOutOfBounds)
	}

	// Перерыв целиком внутри рабочих часов
	if config.LunchStart.IsBefore(config.WorkStart) || config.WorkEnd.IsBefore(config.LunchEnd) {
		return ErrLunchOutOfBounds
	}

	return nil
}

// validateDurations проверяет длительность консультации и буфер
func validateDurations(config *domain.ScheduleConfig) error {
	d := config.AppointmentDurationMinutes
	if d < domain.MinAppointmentDurationMinutes || d > domain.MaxAppointmentDurationMinutes {
		return fmt.Errorf("%w: appointmentDurationMinutes must be between %d and %d",
			ErrInvalidDuration, domain.MinAppointmentDurationMinutes, domain.MaxAppointmentDurationMinutes)
	}

	if config.BufferMinutes < 0 || config.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferMinutes must be between 0 and %d",
			ErrInvalidInput, domain.MaxBufferMinutes)
	}

	return nil
}
