package get_schedule_config

import (
	"context"

	"github.com/avezht/NutriPlan-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	Get(ctx context.Context, nutritionistID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
