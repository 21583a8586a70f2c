package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers"
)

type contextKey string

// nutritionistIDKey ключ контекста для ID аутентифицированного нутрициолога
const nutritionistIDKey contextKey = "nutritionistID"

// HeaderUserID заголовок с ID аутентифицированного пользователя
// Заголовок проставляет API gateway после проверки токена
const HeaderUserID = "X-User-ID"

// Auth middleware извлекает ID нутрициолога из заголовка X-User-ID
// и кладет его в контекст запроса. Запросы без заголовка отклоняются
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get(HeaderUserID)
		if idStr == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), nutritionistIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetNutritionistID возвращает ID нутрициолога из контекста запроса
func GetNutritionistID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(nutritionistIDKey).(int64)
	return id, ok
}
