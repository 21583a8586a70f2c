package get_nutritionist_appointments

import (
	"net/url"
	"time"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	"github.com/avezht/NutriPlan-SchedulingService/internal/service/appointments/models"
)

// ToServiceRequest парсит query параметры в модель сервиса
// Поддерживаемые параметры: startDate, endDate (YYYY-MM-DD), status, includeReleased
func ToServiceRequest(nutritionistID int64, query url.Values) (*models.GetNutritionistAppointmentsRequest, error) {
	req := &models.GetNutritionistAppointmentsRequest{
		NutritionistID: nutritionistID,
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if query.Get("includeReleased") == "true" {
		req.IncludeReleased = true
	}

	return req, nil
}
