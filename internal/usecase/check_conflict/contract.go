package check_conflict

import (
	"context"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория консультаций
type AppointmentRepository interface {
	GetByNutritionistWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	GetByNutritionist(ctx context.Context, nutritionistID int64) (*domain.ScheduleConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
