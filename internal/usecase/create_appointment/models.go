package create_appointment

import (
	"time"

	"github.com/avezht/NutriPlan-SchedulingService/pkg/types"
)

// Request модель запроса на создание консультации
type Request struct {
	NutritionistID  int64            // ID нутрициолога (из аутентификации)
	PatientID       int64            // ID пациента
	Date            time.Time        // Дата консультации (без времени)
	StartTime       types.TimeString // Время начала (например, "10:00")
	DurationMinutes *int             // Длительность; nil - взять из конфигурации расписания
	Notes           *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной консультацией
type Response struct {
	ID              int64            // ID созданной консультации
	NutritionistID  int64            // ID нутрициолога
	PatientID       int64            // ID пациента
	Date            time.Time        // Дата консультации
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус консультации

	// Денормализованные данные
	PatientName string  // Имя пациента
	Notes       *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
