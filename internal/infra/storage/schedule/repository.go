package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/dbmetrics"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/psqlbuilder"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/types"
)

// Repository репозиторий для работы с конфигурацией расписания нутрициолога
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByNutritionist получает конфигурацию расписания нутрициолога
// На одного нутрициолога существует не более одной конфигурации
func (r *Repository) GetByNutritionist(ctx context.Context, nutritionistID int64) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"nutritionist_id",
		"working_days",
		"work_start",
		"work_end",
		"lunch_enabled",
		"lunch_start",
		"lunch_end",
		"appointment_duration_minutes",
		"buffer_minutes",
		"created_at",
		"updated_at",
	).
		From("schedule_configs").
		Where(squirrel.Eq{"nutritionist_id": nutritionistID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNutritionist - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.ScheduleConfig
	var workingDays []string
	var lunchStart, lunchEnd sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.NutritionistID,
		pq.Array(&workingDays),
		&config.WorkStart,
		&config.WorkEnd,
		&config.LunchEnabled,
		&lunchStart,
		&lunchEnd,
		&config.AppointmentDurationMinutes,
		&config.BufferMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNutritionist - scan config: %v", ErrScanRow, err)
	}

	config.WorkingDays = toWeekdays(workingDays)
	config.LunchStart = toTimeString(lunchStart)
	config.LunchEnd = toTimeString(lunchEnd)
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert создает или полностью заменяет конфигурацию расписания нутрициолога
// Семантика last-write-wins: повторное сохранение для того же нутрициолога
// перезаписывает предыдущую конфигурацию целиком
func (r *Repository) Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingDays := make([]string, len(config.WorkingDays))
	for i, d := range config.WorkingDays {
		workingDays[i] = string(d)
	}

	query, args, err := psqlbuilder.Insert("schedule_configs").
		Columns(
			"nutritionist_id",
			"working_days",
			"work_start",
			"work_end",
			"lunch_enabled",
			"lunch_start",
			"lunch_end",
			"appointment_duration_minutes",
			"buffer_minutes",
		).
		Values(
			config.NutritionistID,
			pq.Array(workingDays),
			config.WorkStart,
			config.WorkEnd,
			config.LunchEnabled,
			nullableTime(config.LunchStart),
			nullableTime(config.LunchEnd),
			config.AppointmentDurationMinutes,
			config.BufferMinutes,
		).
		Suffix(`ON CONFLICT (nutritionist_id) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			work_start = EXCLUDED.work_start,
			work_end = EXCLUDED.work_end,
			lunch_enabled = EXCLUDED.lunch_enabled,
			lunch_start = EXCLUDED.lunch_start,
			lunch_end = EXCLUDED.lunch_end,
			appointment_duration_minutes = EXCLUDED.appointment_duration_minutes,
			buffer_minutes = EXCLUDED.buffer_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// DeleteByNutritionist удаляет конфигурацию расписания нутрициолога
func (r *Repository) DeleteByNutritionist(ctx context.Context, nutritionistID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_configs").
		Where(squirrel.Eq{"nutritionist_id": nutritionistID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByNutritionist - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByNutritionist - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByNutritionist - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}

// toWeekdays конвертирует строки из БД в доменные дни недели
func toWeekdays(days []string) []domain.Weekday {
	result := make([]domain.Weekday, len(days))
	for i, d := range days {
		result[i] = domain.Weekday(d)
	}
	return result
}

// toTimeString конвертирует nullable колонку TIME в TimeString
func toTimeString(v sql.NullString) types.TimeString {
	if !v.Valid {
		return ""
	}
	s := v.String
	if len(s) >= 5 {
		s = s[:5]
	}
	return types.TimeString(s)
}

// nullableTime конвертирует TimeString в значение для nullable колонки
func nullableTime(t types.TimeString) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
