package cancel_appointment

import (
	"github.com/avezht/NutriPlan-SchedulingService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(nutritionistID int64) *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		NutritionistID:     nutritionistID,
		CancellationReason: r.CancellationReason,
	}
}
