package get_nutritionist_appointments

import (
	"context"

	"github.com/avezht/NutriPlan-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetNutritionistAppointments(ctx context.Context, req *models.GetNutritionistAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
