package update_appointment_status

import (
	"github.com/avezht/NutriPlan-SchedulingService/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // "completed" или "no_show"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(nutritionistID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		NutritionistID: nutritionistID,
		Status:         r.Status,
	}
}
