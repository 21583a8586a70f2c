package patientservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с PatientService
// Вся CRUD-часть кабинета (пациенты, профили, дневники питания) живет
// во внешнем сервисе; здесь нужны только данные пациента для консультации
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PatientService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPatient получает пациента по ID
func (c *Client) GetPatient(ctx context.Context, patientID int64) (*Patient, error) {
	url := fmt.Sprintf("%s/internal/patients/%d", c.baseURL, patientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid patient ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrPatientNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var patient Patient
	if err := json.NewDecoder(resp.Body).Decode(&patient); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &patient, nil
}

// GetOwnedPatient получает пациента и проверяет, что он принадлежит нутрициологу
func (c *Client) GetOwnedPatient(ctx context.Context, nutritionistID, patientID int64) (*Patient, error) {
	patient, err := c.GetPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if patient.NutritionistID != nutritionistID {
		c.log.Warn("Patient id=%d belongs to nutritionist=%d, requested by nutritionist=%d",
			patientID, patient.NutritionistID, nutritionistID)
		return nil, ErrPatientNotOwned
	}

	return patient, nil
}
