package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	autherrors "github.com/JuanDavidBarr/TalentoPlus/internal/auth/errors"
	"github.com/JuanDavidBarr/TalentoPlus/internal/department"
	"github.com/JuanDavidBarr/TalentoPlus/internal/employee"
	employeeerrors "github.com/JuanDavidBarr/TalentoPlus/internal/employee/errors"
	"github.com/JuanDavidBarr/TalentoPlus/internal/events"
	"github.com/JuanDavidBarr/TalentoPlus/internal/messaging/kafka"
	"github.com/JuanDavidBarr/TalentoPlus/internal/position"
	"github.com/JuanDavidBarr/TalentoPlus/internal/shared/apperror"
	"github.com/JuanDavidBarr/TalentoPlus/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	SelfRegister(ctx context.Context, req SelfRegisterRequest) (employee.EmployeeResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	GetMyInfo(ctx context.Context, employeeID uint) (employee.EmployeeResponse, error)
}

type service struct {
	db          *sql.DB
	employees   employee.Repository
	positions   position.Repository
	departments department.Repository
	issuer      TokenIssuer
	publisher   kafka.Publisher
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	employees employee.Repository,
	positions position.Repository,
	departments department.Repository,
	issuer TokenIssuer,
	publisher kafka.Publisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:          db,
		employees:   employees,
		positions:   positions,
		departments: departments,
		issuer:      issuer,
		publisher:   publisher,
		logger:      l,
	}
}

// SelfRegister creates a pending employee record from the public
// registration form. HR assigns the real position and salary later: the
// record always starts as Pending, salary 0, in the default position.
func (s *service) SelfRegister(ctx context.Context, req SelfRegisterRequest) (employee.EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("self register requested",
		zap.String("request_id", rid),
		zap.String("document_number", req.DocumentNumber),
		zap.String("email", req.Email),
	)

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return employee.EmployeeResponse{}, employeeerrors.ErrInvalidBirthDate
	}

	if _, err := s.departments.FindByID(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employee.EmployeeResponse{}, autherrors.ErrDepartmentNotFound
		}
		return employee.EmployeeResponse{}, err
	}

	defaultPos, err := s.positions.FindByName(ctx, position.DefaultName)
	if err != nil {
		s.logger.Error("default position lookup failed", zap.Error(err))
		return employee.EmployeeResponse{}, apperror.Wrap(
			err,
			apperror.CodeInternalError,
			"Default position is not available",
			http.StatusInternalServerError,
		)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("self register begin tx failed", zap.Error(err))
		return employee.EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.employees.WithTx(tx)

	// One combined probe: a match on either field is the same conflict,
	// the caller is not told which one collided.
	exists, err := qtx.ExistsByDocumentOrEmail(ctx, req.DocumentNumber, req.Email)
	if err != nil {
		s.logger.Error("self register existence probe failed", zap.Error(err))
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, autherrors.ErrAlreadyRegistered
	}

	empl := &employee.Employee{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		DocumentNumber:      req.DocumentNumber,
		Email:               req.Email,
		Phone:               req.Phone,
		BirthDate:           birthDate,
		Address:             req.Address,
		HireDate:            time.Now().UTC(),
		Status:              employee.StatusPending,
		Salary:              0,
		EducationLevel:      req.EducationLevel,
		ProfessionalProfile: req.ProfessionalProfile,
		PositionID:          defaultPos.ID,
		DepartmentID:        req.DepartmentID,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("self register persist failed", zap.Error(err))
		return employee.EmployeeResponse{}, mapRegistrationError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("self register commit failed", zap.Error(err))
		return employee.EmployeeResponse{}, err
	}

	s.publishRegistered(ctx, rid, empl)

	s.logger.Info("self register success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
	)

	created, err := s.employees.FindByID(ctx, empl.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(*created), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	s.logger.Debug("login requested", zap.String("document_number", req.DocumentNumber))

	empl, err := s.employees.FindByCredentials(ctx, req.DocumentNumber, req.Email)
	if err != nil {
		// Only a missing match is a credential failure. Anything else is
		// a store problem and must not surface as unauthorized.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return LoginResponse{}, err
	}

	token, expiresAt, err := s.issuer.Issue(empl)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.Uint("employee_id", empl.ID))

	return LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Employee: EmployeeBasicInfo{
			ID:       empl.ID,
			FullName: empl.FullName(),
			Email:    empl.Email,
		},
	}, nil
}

func (s *service) GetMyInfo(ctx context.Context, employeeID uint) (employee.EmployeeResponse, error) {
	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		// The token can outlive the record.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(*empl), nil
}

// publishRegistered hands the welcome notification to the worker. Failure
// is logged and swallowed: the registration already committed.
func (s *service) publishRegistered(ctx context.Context, rid string, empl *employee.Employee) {
	if s.publisher == nil {
		return
	}

	event := events.EmployeeRegisteredEvent{
		EventType:  "employee_registered",
		RequestID:  rid,
		EmployeeID: empl.ID,
		Email:      empl.Email,
		FullName:   empl.FullName(),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal employee_registered event failed", zap.Error(err))
		return
	}

	if err := s.publisher.Publish(ctx, kafka.Event{
		Topic:         events.EmployeeRegisteredTopic,
		Key:           empl.Email,
		EventType:     event.EventType,
		AggregateType: "employee",
		Payload:       payload,
	}); err != nil {
		s.logger.Warn("publish employee_registered failed, welcome mail skipped",
			zap.Uint("employee_id", empl.ID),
			zap.Error(err),
		)
	}
}

func mapToEmployeeResponse(empl employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
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
