package check_conflict

import (
	"time"

	"github.com/avezht/NutriPlan-SchedulingService/pkg/types"
)

// Request модель запроса на проверку конфликта
type Request struct {
	NutritionistID  int64            // ID нутрициолога
	Date            time.Time        // Дата проверяемой консультации
	StartTime       types.TimeString // Время начала (например, "10:00")
	DurationMinutes *int             // Длительность; nil - взять из конфигурации расписания
}

// Response модель ответа проверки конфликта
type Response struct {
	HasConflict bool // Есть ли пересечение с существующей консультацией

	// Данные о конфликтующей консультации (заполняются при HasConflict=true)
	ConflictingTime    *types.TimeString // Время начала конфликтующей консультации
	ConflictingPatient *string           // Имя пациента конфликтующей консультации
}
