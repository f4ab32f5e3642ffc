package employee

type CreateEmployeeRequest struct {
	FirstName           string  `json:"first_name" binding:"required"`
	LastName            string  `json:"last_name" binding:"required"`
	DocumentNumber      string  `json:"document_number" binding:"required"`
	Email               string  `json:"email" binding:"required,email"`
	Phone               string  `json:"phone"`
	BirthDate           string  `json:"birth_date" binding:"required"`
	Address             string  `json:"address"`
	HireDate            string  `json:"hire_date" binding:"required"`
	Status              string  `json:"status" binding:"required"`
	Salary              float64 `json:"salary" binding:"gte=0"`
	EducationLevel      string  `json:"education_level"`
	ProfessionalProfile string  `json:"professional_profile"`
	PositionID          uint    `json:"position_id" binding:"required"`
	DepartmentID        uint    `json:"department_id" binding:"required"`
}

// UpdateEmployeeRequest carries every mutable field: updates are a full
// replace, there is no partial-update contract.
type UpdateEmployeeRequest struct {
	FirstName           string  `json:"first_name" binding:"required"`
	LastName            string  `json:"last_name" binding:"required"`
	DocumentNumber      string  `json:"document_number" binding:"required"`
	Email               string  `json:"email" binding:"required,email"`
	Phone               string  `json:"phone"`
	BirthDate           string  `json:"birth_date" binding:"required"`
	Address             string  `json:"address"`
	HireDate            string  `json:"hire_date" binding:"required"`
	Status              string  `json:"status" binding:"required"`
	Salary              float64 `json:"salary" binding:"gte=0"`
	EducationLevel      string  `json:"education_level"`
	ProfessionalProfile string  `json:"professional_profile"`
	PositionID          uint    `json:"position_id" binding:"required"`
	DepartmentID        uint    `json:"department_id" binding:"required"`
}

// EmployeeResponse is the flattened read projection: referenced position
// and department names are inlined.
type EmployeeResponse struct {
	ID                  uint    `json:"id"`
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	DocumentNumber      string  `json:"document_number"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	BirthDate           string  `json:"birth_date"`
	Address             string  `json:"address"`
	HireDate            string  `json:"hire_date"`
	Status              string  `json:"status"`
	Salary              float64 `json:"salary"`
	EducationLevel      string  `json:"education_level"`
	ProfessionalProfile string  `json:"professional_profile"`
	PositionID          uint    `json:"position_id"`
	PositionName        string  `json:"position_name,omitempty"`
	DepartmentID        uint    `json:"department_id"`
	DepartmentName      string  `json:"department_name,omitempty"`
}
