package models

import (
	"time"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/types"
)

// Request модели

// UpsertConfigRequest запрос на сохранение конфигурации расписания
// Сохранение идемпотентно: повторный запрос для того же нутрициолога
// полностью заменяет предыдущую конфигурацию
type UpsertConfigRequest struct {
	NutritionistID int64    `json:"nutritionistId"`
	WorkingDays    []string `json:"workingDays"` // ["monday", "tuesday", ...]
	WorkStart      string   `json:"workStart"`   // "09:00"
	WorkEnd        string   `json:"workEnd"`     // "17:00"

	LunchEnabled bool    `json:"lunchEnabled"`
	LunchStart   *string `json:"lunchStart,omitempty"` // обязательно при lunchEnabled=true
	LunchEnd     *string `json:"lunchEnd,omitempty"`

	AppointmentDurationMinutes *int `json:"appointmentDurationMinutes,omitempty"` // nil - значение по умолчанию
	BufferMinutes              *int `json:"bufferMinutes,omitempty"`              // nil - без буфера
}

// ToDomainConfig конвертирует request в domain модель
// Незаданные длительность и буфер заменяются значениями по умолчанию
func (r *UpsertConfigRequest) ToDomainConfig() *domain.ScheduleConfig {
	config := &domain.ScheduleConfig{
		NutritionistID:             r.NutritionistID,
		WorkStart:                  types.TimeString(r.WorkStart),
		WorkEnd:                    types.TimeString(r.WorkEnd),
		LunchEnabled:               r.LunchEnabled,
		AppointmentDurationMinutes: domain.DefaultAppointmentDurationMinutes,
		BufferMinutes:              domain.DefaultBufferMinutes,
	}

	config.WorkingDays = make([]domain.Weekday, 0, len(r.WorkingDays))
	for _, day := range r.WorkingDays {
		config.WorkingDays = append(config.WorkingDays, domain.Weekday(day))
	}

	if r.LunchStart != nil {
		config.LunchStart = types.TimeString(*r.LunchStart)
	}
	if r.LunchEnd != nil {
		config.LunchEnd = types.TimeString(*r.LunchEnd)
	}

	if r.AppointmentDurationMinutes != nil {
		config.AppointmentDurationMinutes = *r.AppointmentDurationMinutes
	}
	if r.BufferMinutes != nil {
		config.BufferMinutes = *r.BufferMinutes
	}

	return config
}

// Response модели

// ConfigResponse ответ с конфигурацией расписания
type ConfigResponse struct {
	ID             int64    `json:"id"`
	NutritionistID int64    `json:"nutritionistId"`
	WorkingDays    []string `json:"workingDays"`
	WorkStart      string   `json:"workStart"`
	WorkEnd        string   `json:"workEnd"`

	LunchEnabled bool    `json:"lunchEnabled"`
	LunchStart   *string `json:"lunchStart,omitempty"`
	LunchEnd     *string `json:"lunchEnd,omitempty"`

	AppointmentDurationMinutes int `json:"appointmentDurationMinutes"`
	BufferMinutes              int `json:"bufferMinutes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.ScheduleConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ID:                         c.ID,
		NutritionistID:             c.NutritionistID,
		WorkStart:                  c.WorkStart.String(),
		WorkEnd:                    c.WorkEnd.String(),
		LunchEnabled:               c.LunchEnabled,
		AppointmentDurationMinutes: c.AppointmentDurationMinutes,
		BufferMinutes:              c.BufferMinutes,
		CreatedAt:                  c.CreatedAt,
		UpdatedAt:                  c.UpdatedAt,
	}

	resp.WorkingDays = make([]string, 0, len(c.WorkingDays))
	for _, day := range c.WorkingDays {
		resp.WorkingDays = append(resp.WorkingDays, string(day))
	}

	if c.LunchEnabled {
		lunchStart := c.LunchStart.String()
		lunchEnd := c.LunchEnd.String()
		resp.LunchStart = &lunchStart
		resp.LunchEnd = &lunchEnd
	}

	return resp
}
