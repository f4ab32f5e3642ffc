package employee

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/JuanDavidBarr/TalentoPlus/internal/department"
	employeeerrors "github.com/JuanDavidBarr/TalentoPlus/internal/employee/errors"
	"github.com/JuanDavidBarr/TalentoPlus/internal/position"
	"github.com/JuanDavidBarr/TalentoPlus/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	positions   position.Repository
	departments department.Repository
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	positions position.Repository,
	departments department.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		positions:   positions,
		departments: departments,
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("document_number", req.DocumentNumber),
		zap.String("email", req.Email),
	)

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		s.logger.Warn("create employee invalid birth_date",
			zap.String("birth_date", req.BirthDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidBirthDate
	}
	hireDate, err := time.Parse(dateLayout, req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	if err := s.checkReferences(ctx, req.PositionID, req.DepartmentID); err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	taken, err := qtx.DocumentNumberExists(ctx, req.DocumentNumber, 0)
	if err != nil {
		s.logger.Error("create employee document probe failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		return EmployeeResponse{}, employeeerrors.ErrDocumentNumberTaken
	}

	taken, err = qtx.EmailExists(ctx, req.Email, 0)
	if err != nil {
		s.logger.Error("create employee email probe failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		return EmployeeResponse{}, employeeerrors.ErrEmailTaken
	}

	empl := &Employee{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		DocumentNumber:      req.DocumentNumber,
		Email:               req.Email,
		Phone:               req.Phone,
		BirthDate:           birthDate,
		Address:             req.Address,
		HireDate:            hireDate,
		Status:              req.Status,
		Salary:              req.Salary,
		EducationLevel:      req.EducationLevel,
		ProfessionalProfile: req.ProfessionalProfile,
		PositionID:          req.PositionID,
		DepartmentID:        req.DepartmentID,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
	)

	// Reload so the projection carries the resolved position and
	// department names.
	created, err := s.repo.FindByID(ctx, empl.ID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*created), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Uint("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidBirthDate
	}
	hireDate, err := time.Parse(dateLayout, req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	if err := s.checkReferences(ctx, req.PositionID, req.DepartmentID); err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// Uniqueness probes exclude the record being updated: keeping your own
	// document number or email is not a conflict.
	taken, err := qtx.DocumentNumberExists(ctx, req.DocumentNumber, id)
	if err != nil {
		s.logger.Error("update employee document probe failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		return EmployeeResponse{}, employeeerrors.ErrDocumentNumberTaken
	}

	taken, err = qtx.EmailExists(ctx, req.Email, id)
	if err != nil {
		s.logger.Error("update employee email probe failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		return EmployeeResponse{}, employeeerrors.ErrEmailTaken
	}

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.DocumentNumber = req.DocumentNumber
	empl.Email = req.Email
	empl.Phone = req.Phone
	empl.BirthDate = birthDate
	empl.Address = req.Address
	empl.HireDate = hireDate
	empl.Status = req.Status
	empl.Salary = req.Salary
	empl.EducationLevel = req.EducationLevel
	empl.ProfessionalProfile = req.ProfessionalProfile
	empl.PositionID = req.PositionID
	empl.DepartmentID = req.DepartmentID

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.Uint("employee_id", id))

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*updated), nil
}

// Delete reports whether a row was removed. A missing id is a normal
// outcome, not an error.
func (s *service) Delete(ctx context.Context, id uint) (bool, error) {
	s.logger.Debug("delete employee requested", zap.Uint("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	found, err := qtx.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return false, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return false, err
	}

	s.logger.Info("delete employee finished",
		zap.Uint("employee_id", id),
		zap.Bool("found", found),
	)
	return found, nil
}

func (s *service) checkReferences(ctx context.Context, positionID, departmentID uint) error {
	if _, err := s.positions.FindByID(ctx, positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrPositionNotFound
		}
		return err
	}
	if _, err := s.departments.FindByID(ctx, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrDepartmentNotFound
		}
		return err
	}
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                  empl.ID,
		FirstName:           empl.FirstName,
		LastName:            empl.LastName,
		DocumentNumber:      empl.DocumentNumber,
		Email:               empl.Email,
		Phone:               empl.Phone,
		BirthDate:           empl.BirthDate.Format(dateLayout),
		Address:             empl.Address,
		HireDate:            empl.HireDate.Format(dateLayout),
		Status:              empl.Status,
		Salary:              empl.Salary,
		EducationLevel:      empl.EducationLevel,
		ProfessionalProfile: empl.ProfessionalProfile,
		PositionID:          empl.PositionID,
		DepartmentID:        empl.DepartmentID,
	}
	if empl.Position != nil {
		resp.PositionName = empl.Position.Name
	}
	if empl.Department != nil {
		resp.DepartmentName = empl.Department.Name
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
