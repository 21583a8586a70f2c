package check_conflict

import (
	"errors"
	"net/http"

	"github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers"
	"github.com/avezht/NutriPlan-SchedulingService/internal/api/middleware"
	checkConflict "github.com/avezht/NutriPlan-SchedulingService/internal/usecase/check_conflict"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные параметры проверки"
)

type Handler struct {
	useCase CheckConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/check-conflict
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем nutritionistID из контекста (через middleware Auth)
	nutritionistID, ok := middleware.GetNutritionistID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/check-conflict - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CheckConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/check-conflict - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(nutritionistID)
	if err != nil {
		h.logger.Warn("POST /appointments/check-conflict - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflict.ErrInvalidInput):
			h.logger.Warn("POST /appointments/check-conflict - Invalid input: nutritionist_id=%d, error=%v",
				nutritionistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments/check-conflict - Failed to check conflict: nutritionist_id=%d, error=%v",
				nutritionistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments/check-conflict - Conflict checked: nutritionist_id=%d, has_conflict=%t",
		nutritionistID, result.HasConflict)
	handlers.RespondJSON(w, http.StatusOK, response)
}
