package patientservice

// Patient модель пациента из PatientService
type Patient struct {
	ID             int64  `json:"id"`
	NutritionistID int64  `json:"nutritionist_id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Active         bool   `json:"active"`
}

// ErrorResponse модель ошибки от PatientService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
