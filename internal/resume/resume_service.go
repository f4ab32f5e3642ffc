package resume

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JuanDavidBarr/TalentoPlus/internal/employee"
	employeeerrors "github.com/JuanDavidBarr/TalentoPlus/internal/employee/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const displayDateLayout = "02/01/2006"

//go:generate mockgen -source=resume_service.go -destination=mock/resume_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, employeeID uint) ([]byte, error)
}

type service struct {
	employees employee.Repository
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("resume.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("resume.service")
	}
	return &service{
		employees: employees,
		now:       time.Now,
		logger:    l,
	}
}

// Generate renders the employee's full résumé as a PDF document.
func (s *service) Generate(ctx context.Context, employeeID uint) ([]byte, error) {
	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("load employee for resume failed",
			zap.Uint("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}

	pdf, err := buildResumePDF(s.composeLines(empl))
	if err != nil {
		s.logger.Error("render resume failed",
			zap.Uint("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}

	return pdf, nil
}

func (s *service) composeLines(empl *employee.Employee) []pdfLine {
	positionName := "Sin cargo asignado"
	if empl.Position != nil && empl.Position.Name != "" {
		positionName = empl.Position.Name
	}
	departmentName := "No asignado"
	if empl.Department != nil && empl.Department.Name != "" {
		departmentName = empl.Department.Name
	}

	lines := []pdfLine{
		header(empl.FullName(), 18),
		body(positionName),
		blank(),
	}

	lines = append(lines,
		header("Datos de Contacto", 13),
		body("Email: "+empl.Email),
		body("Teléfono: "+orDefault(empl.Phone, "No especificado")),
		body("Dirección: "+orDefault(empl.Address, "No especificada")),
		blank(),
	)

	lines = append(lines,
		header("Datos Personales", 13),
		body("Documento: "+empl.DocumentNumber),
		body("Fecha de Nacimiento: "+empl.BirthDate.Format(displayDateLayout)),
		body(fmt.Sprintf("Edad: %d años", s.calculateAge(empl.BirthDate))),
		blank(),
	)

	workPosition := positionName
	if empl.Position == nil || empl.Position.Name == "" {
		workPosition = "No asignado"
	}
	lines = append(lines,
		header("Información Laboral", 13),
		body("Cargo: "+workPosition),
		body("Departamento: "+departmentName),
		body("Fecha de Ingreso: "+empl.HireDate.Format(displayDateLayout)),
		body("Antigüedad: "+s.yearsOfService(empl.HireDate)),
		body(fmt.Sprintf("Salario: $%.2f", empl.Salary)),
		body("Estado: "+empl.Status),
		blank(),
	)

	lines = append(lines,
		header("Nivel Educativo", 13),
		body(orDefault(empl.EducationLevel, "No especificado")),
		blank(),
	)

	lines = append(lines,
		header("Perfil Profesional", 13),
		body(orDefault(empl.ProfessionalProfile, "No especificado")),
		blank(),
	)

	lines = append(lines,
		body("Generado el: "+s.now().Format("02/01/2006 15:04")),
		body("TalentoPlus - Sistema de Gestión de Talento Humano"),
	)

	return lines
}

func (s *service) calculateAge(birthDate time.Time) int {
	today := s.now()
	age := today.Year() - birthDate.Year()
	if birthDate.AddDate(age, 0, 0).After(today) {
		age--
	}
	return age
}

// yearsOfService renders tenure as whole years and months, counting a month
// only once its day of the month has passed.
func (s *service) yearsOfService(hireDate time.Time) string {
	today := s.now()
	years := today.Year() - hireDate.Year()
	months := int(today.Month()) - int(hireDate.Month())

	if months < 0 {
		years--
		months += 12
	}

	if today.Day() < hireDate.Day() {
		months--
		if months < 0 {
			years--
			months += 12
		}
	}

	if years > 0 && months > 0 {
		return fmt.Sprintf("%d año(s) y %d mes(es)", years, months)
	}
	if years > 0 {
		return fmt.Sprintf("%d año(s)", years)
	}
	return fmt.Sprintf("%d mes(es)", months)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
