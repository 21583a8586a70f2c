package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	scheduleRepo "github.com/avezht/NutriPlan-SchedulingService/internal/infra/storage/schedule"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/types"
)

// UseCase use case для получения доступных слотов записи на консультацию
//
// Результат - чистая функция от конфигурации расписания и существующих записей:
// текущее время здесь не учитывается, отсечение прошедших слотов на сегодня -
// забота создания консультации, а не выдачи списка
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

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: nutritionist=%d, date=%s",
		req.NutritionistID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию расписания
	// Отсутствие конфигурации - валидное состояние с пустым результатом
	config, err := uc.scheduleRepo.GetByNutritionist(ctx, req.NutritionistID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			uc.logger.Info("GetAvailableSlots: nutritionist=%d has no schedule config", req.NutritionistID)
			return uc.emptyResponse(req, 0), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	// 3. Проверяем, что дата приходится на рабочий день
	weekday := domain.WeekdayFromTime(req.Date.Weekday())
	if !config.IsWorkingDay(weekday) {
		uc.logger.Info("GetAvailableSlots: %s is not a working day for nutritionist=%d",
			weekday, req.NutritionistID)
		return uc.emptyResponse(req, config.AppointmentDurationMinutes), nil
	}

	// 4. Генерируем временные слоты по конфигурации
	slots, err := generateTimeSlots(config)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 5. Получаем занимающие слот консультации на эту дату
	filter := domain.AppointmentsFilter{
		NutritionistID:  req.NutritionistID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeReleased: false, // Отменённые и no-show слот не занимают
	}

	appointments, err := uc.appointmentRepo.GetByNutritionistWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Убираем занятые времена начала
	available := filterBookedSlots(slots, appointments)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for nutritionist=%d, date=%s",
		len(available), len(slots), req.NutritionistID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		NutritionistID:  req.NutritionistID,
		DurationMinutes: config.AppointmentDurationMinutes,
		Slots:           available,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, durationMinutes int) *Response {
	return &Response{
		Date:            req.Date,
		NutritionistID:  req.NutritionistID,
		DurationMinutes: durationMinutes,
		Slots:           []types.TimeString{},
	}
}
