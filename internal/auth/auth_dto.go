package auth

import "time"

type SelfRegisterRequest struct {
	FirstName           string `json:"first_name" binding:"required"`
	LastName            string `json:"last_name" binding:"required"`
	DocumentNumber      string `json:"document_number" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone"`
	BirthDate           string `json:"birth_date" binding:"required"`
	Address             string `json:"address"`
	EducationLevel      string `json:"education_level"`
	ProfessionalProfile string `json:"professional_profile"`
	DepartmentID        uint   `json:"department_id" binding:"required"`
}

type LoginRequest struct {
	DocumentNumber string `json:"document_number" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
}

type EmployeeBasicInfo struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Employee  EmployeeBasicInfo `json:"employee"`
}
