package importer

import (
	"context"
	"errors"
	"strings"

	"github.com/JuanDavidBarr/TalentoPlus/internal/department"
	"github.com/JuanDavidBarr/TalentoPlus/internal/employee"
	"github.com/JuanDavidBarr/TalentoPlus/internal/position"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Spreadsheet columns, zero-based. First row is the header.
const (
	colDocumentNumber = iota
	colFirstName
	colLastName
	colBirthDate
	colAddress
	colPhone
	colEmail
	colPosition
	colSalary
	colHireDate
	colStatus
	colEducationLevel
	colProfessionalProfile
	colDepartment
	columnCount
)

type Result struct {
	ImportedCount int `json:"imported_count"`
}

//go:generate mockgen -source=importer_service.go -destination=mock/importer_service_mock.go -package=mock
type Service interface {
	ImportFromFile(ctx context.Context, path string) (*Result, error)
}

// ReaderFactory opens a spreadsheet at a path. Swappable in tests.
type ReaderFactory func(path string) (RowReader, error)

type service struct {
	employees   employee.Repository
	positions   position.Repository
	departments department.Repository
	deptCache   department.Service
	openReader  ReaderFactory
	logger      *zap.Logger
}

func NewService(
	employees employee.Repository,
	positions position.Repository,
	departments department.Repository,
	deptCache department.Service,
	openReader ReaderFactory,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("importer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("importer.service")
	}
	if openReader == nil {
		openReader = OpenXLSX
	}
	return &service{
		employees:   employees,
		positions:   positions,
		departments: departments,
		deptCache:   deptCache,
		openReader:  openReader,
		logger:      l,
	}
}

// ImportFromFile reads the first worksheet row by row. Rows missing the
// essential identity cells are skipped, as are document numbers already on
// file. A failing row never aborts the rest of the import.
func (s *service) ImportFromFile(ctx context.Context, path string) (*Result, error) {
	reader, err := s.openReader(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	rows, err := reader.Rows()
	if err != nil {
		return nil, err
	}

	imported := 0
	departmentsCreated := false

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rowNum := i + 1

		created, newDept, rowErr := s.importRow(ctx, rowNum, row)
		if rowErr != nil {
			s.logger.Warn("row import failed, continuing",
				zap.Int("row", rowNum),
				zap.Error(rowErr),
			)
			continue
		}
		if created {
			imported++
		}
		if newDept {
			departmentsCreated = true
		}
	}

	if departmentsCreated && s.deptCache != nil {
		s.deptCache.InvalidateCache(ctx)
	}

	s.logger.Info("import finished",
		zap.String("path", path),
		zap.Int("imported_count", imported),
	)

	return &Result{ImportedCount: imported}, nil
}

func (s *service) importRow(ctx context.Context, rowNum int, row []string) (created bool, newDept bool, err error) {
	documentNumber := cell(row, colDocumentNumber)
	firstName := cell(row, colFirstName)
	lastName := cell(row, colLastName)

	if firstName == "" || lastName == "" || documentNumber == "" {
		s.logger.Debug("skipping row, missing essential data", zap.Int("row", rowNum))
		return false, false, nil
	}

	exists, err := s.employees.DocumentNumberExists(ctx, documentNumber, 0)
	if err != nil {
		return false, false, err
	}
	if exists {
		s.logger.Debug("skipping row, document number already exists",
			zap.Int("row", rowNum),
			zap.String("document_number", documentNumber),
		)
		return false, false, nil
	}

	birthDate, ok := parseDate(cell(row, colBirthDate))
	if !ok {
		s.logger.Warn("unparseable birth date, using current time",
			zap.Int("row", rowNum),
			zap.String("value", cell(row, colBirthDate)),
		)
	}
	hireDate, ok := parseDate(cell(row, colHireDate))
	if !ok {
		s.logger.Warn("unparseable hire date, using current time",
			zap.Int("row", rowNum),
			zap.String("value", cell(row, colHireDate)),
		)
	}
	salary, ok := parseSalary(cell(row, colSalary))
	if !ok {
		s.logger.Warn("unparseable salary, using 0",
			zap.Int("row", rowNum),
			zap.String("value", cell(row, colSalary)),
		)
	}

	pos, err := s.findOrCreatePosition(ctx, cell(row, colPosition))
	if err != nil {
		return false, false, err
	}

	dept, deptCreated, err := s.findOrCreateDepartment(ctx, cell(row, colDepartment))
	if err != nil {
		return false, false, err
	}

	status := cell(row, colStatus)
	if status == "" {
		status = employee.StatusActive
	}

	empl := &employee.Employee{
		DocumentNumber:      documentNumber,
		FirstName:           firstName,
		LastName:            lastName,
		BirthDate:           birthDate,
		Address:             cell(row, colAddress),
		Phone:               cell(row, colPhone),
		Email:               cell(row, colEmail),
		Salary:              salary,
		HireDate:            hireDate,
		Status:              status,
		EducationLevel:      cell(row, colEducationLevel),
		ProfessionalProfile: cell(row, colProfessionalProfile),
		PositionID:          pos.ID,
		DepartmentID:        dept.ID,
	}

	if err := s.employees.Create(ctx, empl); err != nil {
		return false, deptCreated, err
	}

	s.logger.Debug("row imported",
		zap.Int("row", rowNum),
		zap.String("employee", empl.FullName()),
	)

	return true, deptCreated, nil
}

func (s *service) findOrCreatePosition(ctx context.Context, name string) (*position.Position, error) {
	pos, err := s.positions.FindByName(ctx, name)
	if err == nil {
		return pos, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pos = &position.Position{
		Name:        name,
		Description: "Position imported from Excel",
	}
	if err := s.positions.Create(ctx, pos); err != nil {
		return nil, err
	}
	return pos, nil
}

func (s *service) findOrCreateDepartment(ctx context.Context, name string) (*department.Department, bool, error) {
	dept, err := s.departments.FindByName(ctx, name)
	if err == nil {
		return dept, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	dept = &department.Department{
		Name:        name,
		Description: "Department imported from Excel",
	}
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, false, err
	}
	return dept, true, nil
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
