package get_available_slots

import (
	"time"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	getAvailableSlots "github.com/avezht/NutriPlan-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	NutritionistID  int64    `json:"nutritionistId"`
	Date            string   `json:"date"`            // "2025-10-15"
	DurationMinutes int      `json:"durationMinutes"` // длительность каждого слота
	Slots           []string `json:"slots"`           // ["09:00", "10:00", ...]
}

// ToUseCaseRequest конвертирует параметры HTTP запроса в модель use case
func ToUseCaseRequest(nutritionistID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		NutritionistID: nutritionistID,
		Date:           date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &AvailableSlotsResponse{
		NutritionistID:  resp.NutritionistID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
