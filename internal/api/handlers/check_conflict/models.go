package check_conflict

import (
	"time"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	checkConflict "github.com/avezht/NutriPlan-SchedulingService/internal/usecase/check_conflict"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/types"
)

// CheckConflictRequest HTTP request model
type CheckConflictRequest struct {
	AppointmentDate string `json:"appointmentDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`       // "10:00"
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
}

// CheckConflictResponse HTTP response model
type CheckConflictResponse struct {
	HasConflict        bool    `json:"hasConflict"`
	ConflictingTime    *string `json:"conflictingTime,omitempty"`
	ConflictingPatient *string `json:"conflictingPatient,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictRequest) ToUseCaseRequest(nutritionistID int64) (*checkConflict.Request, error) {
	// Парсим дату
	appointmentDate, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &checkConflict.Request{
		NutritionistID:  nutritionistID,
		Date:            appointmentDate,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflict.Response) *CheckConflictResponse {
	out := &CheckConflictResponse{
		HasConflict:        resp.HasConflict,
		ConflictingPatient: resp.ConflictingPatient,
	}

	if resp.ConflictingTime != nil {
		t := resp.ConflictingTime.String()
		out.ConflictingTime = &t
	}

	return out
}
