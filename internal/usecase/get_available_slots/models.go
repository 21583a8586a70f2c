package get_available_slots

import (
	"time"

	"github.com/avezht/NutriPlan-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	NutritionistID int64     // ID нутрициолога
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
// Отсутствие конфигурации и нерабочий день - не ошибки, а пустой список
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	NutritionistID  int64              // ID нутрициолога
	DurationMinutes int                // Длительность консультации (0, если конфигурации нет)
	Slots           []types.TimeString // Доступные времена начала по возрастанию
}
