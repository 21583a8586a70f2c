package schedule

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "github.com/avezht/NutriPlan-SchedulingService/internal/infra/storage/schedule"
	"github.com/avezht/NutriPlan-SchedulingService/internal/service/schedule/models"
)

// Service сервис для работы с конфигурацией расписания
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Get получает конфигурацию расписания нутрициолога
func (s *Service) Get(ctx context.Context, nutritionistID int64) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching schedule config for nutritionist=%d", nutritionistID)

	if nutritionistID <= 0 {
		s.logger.Warn("Get: invalid nutritionistID=%d", nutritionistID)
		return nil, fmt.Errorf("%w: nutritionistID must be positive", ErrInvalidInput)
	}

	config, err := s.scheduleRepo.GetByNutritionist(ctx, nutritionistID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			s.logger.Warn("Get: schedule config not found for nutritionist=%d", nutritionistID)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Get: repository error for nutritionist=%d: %v", nutritionistID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched schedule config id=%d", config.ID)
	return models.FromDomainConfig(config), nil
}

// Upsert сохраняет конфигурацию расписания нутрициолога
// Повторное сохранение полностью заменяет предыдущую конфигурацию
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: saving schedule config for nutritionist=%d", req.NutritionistID)

	// 1. Конвертируем request в domain модель (с подстановкой значений по умолчанию)
	config := req.ToDomainConfig()

	// 2. Валидируем конфигурацию целиком
	if err := validateConfig(config); err != nil {
		s.logger.Warn("Upsert: validation failed for nutritionist=%d: %v", req.NutritionistID, err)
		return nil, err
	}

	// 3. Сохраняем (insert или замена существующей)
	saved, err := s.scheduleRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("Upsert: repository error for nutritionist=%d: %v", req.NutritionistID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved schedule config id=%d for nutritionist=%d",
		saved.ID, req.NutritionistID)
	return models.FromDomainConfig(saved), nil
}
