package employee

import (
	"time"

	"github.com/JuanDavidBarr/TalentoPlus/internal/department"
	"github.com/JuanDavidBarr/TalentoPlus/internal/position"
)

// Known lifecycle states. Status is free text at the store level; these are
// the two values the system itself writes.
const (
	StatusActive  = "Active"
	StatusPending = "Pending"
)

type Employee struct {
	ID                  uint      `gorm:"primaryKey"`
	FirstName           string    `gorm:"size:100;not null"`
	LastName            string    `gorm:"size:100;not null"`
	DocumentNumber      string    `gorm:"size:20;not null;uniqueIndex:uq_employee_document_number"`
	Email               string    `gorm:"size:150;not null;uniqueIndex:uq_employee_email"`
	Phone               string    `gorm:"size:20"`
	BirthDate           time.Time
	Address             string    `gorm:"size:500"`
	HireDate            time.Time `gorm:"not null"`
	Status              string    `gorm:"size:50;not null"`
	Salary              float64   `gorm:"type:numeric(12,2)"`
	EducationLevel      string    `gorm:"size:100"`
	ProfessionalProfile string    `gorm:"size:1000"`

	PositionID   uint `gorm:"not null"`
	Position     *position.Position
	DepartmentID uint `gorm:"not null"`
	Department   *department.Department

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
