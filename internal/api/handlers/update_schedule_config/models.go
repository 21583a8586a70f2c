package update_schedule_config

import (
	"github.com/avezht/NutriPlan-SchedulingService/internal/service/schedule/models"
)

// UpdateScheduleConfigRequest HTTP request model
type UpdateScheduleConfigRequest struct {
	WorkingDays []string `json:"workingDays"` // ["monday", "tuesday", ...]
	WorkStart   string   `json:"workStart"`   // "09:00"
	WorkEnd     string   `json:"workEnd"`     // "17:00"

	LunchEnabled bool    `json:"lunchEnabled"`
	LunchStart   *string `json:"lunchStart,omitempty"`
	LunchEnd     *string `json:"lunchEnd,omitempty"`

	AppointmentDurationMinutes *int `json:"appointmentDurationMinutes,omitempty"`
	BufferMinutes              *int `json:"bufferMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleConfigRequest) ToServiceRequest(nutritionistID int64) *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		NutritionistID:             nutritionistID,
		WorkingDays:                r.WorkingDays,
		WorkStart:                  r.WorkStart,
		WorkEnd:                    r.WorkEnd,
		LunchEnabled:               r.LunchEnabled,
		LunchStart:                 r.LunchStart,
		LunchEnd:                   r.LunchEnd,
		AppointmentDurationMinutes: r.AppointmentDurationMinutes,
		BufferMinutes:              r.BufferMinutes,
	}
}
