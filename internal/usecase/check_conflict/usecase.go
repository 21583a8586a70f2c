package check_conflict

import (
	"context"
	"errors"
	"fmt"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	scheduleRepo "github.com/avezht/NutriPlan-SchedulingService/internal/infra/storage/schedule"
)

// UseCase use case для проверки конфликта времени
//
// Проверка носит рекомендательный характер: итоговую защиту от двойного бронирования дает
// транзакция создания консультации, а не этот предварительный запрос
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		logger:          logger,
	}
}

// Execute выполняет use case проверки конфликта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflict: nutritionist=%d, date=%s, time=%s",
		req.NutritionistID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflict: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем длительность: из запроса или из конфигурации расписания
	durationMinutes := domain.DefaultAppointmentDurationMinutes

	config, err := uc.scheduleRepo.GetByNutritionist(ctx, req.NutritionistID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
		uc.logger.Error("CheckConflict: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}
	if config != nil {
		durationMinutes = config.AppointmentDurationMinutes
	}
	if req.DurationMinutes != nil {
		durationMinutes = *req.DurationMinutes
	}

	// 3. Получаем занимающие слот консультации дня
	filter := domain.AppointmentsFilter{
		NutritionistID:  req.NutritionistID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeReleased: false,
	}

	appointments, err := uc.appointmentRepo.GetByNutritionistWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckConflict: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 4. Проверяем пересечение с существующими консультациями
	found, err := findConflict(req.StartTime, durationMinutes, appointments)
	if err != nil {
		uc.logger.Error("CheckConflict: failed to check conflicts: %v", err)
		return nil, fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
	}

	if found == nil {
		return &Response{HasConflict: false}, nil
	}

	uc.logger.Info("CheckConflict: conflict at %s with appointment of %s",
		found.StartTime, found.PatientName)

	conflictingTime := found.StartTime
	conflictingPatient := found.PatientName

	return &Response{
		HasConflict:        true,
		ConflictingTime:    &conflictingTime,
		ConflictingPatient: &conflictingPatient,
	}, nil
}
