package auth_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/JuanDavidBarr/TalentoPlus/internal/auth"
	autherrors "github.com/JuanDavidBarr/TalentoPlus/internal/auth/errors"
	"github.com/JuanDavidBarr/TalentoPlus/internal/department"
	departmentMock "github.com/JuanDavidBarr/TalentoPlus/internal/department/mock"
	"github.com/JuanDavidBarr/TalentoPlus/internal/employee"
	employeeerrors "github.com/JuanDavidBarr/TalentoPlus/internal/employee/errors"
	employeeMock "github.com/JuanDavidBarr/TalentoPlus/internal/employee/mock"
	kafkaMock "github.com/JuanDavidBarr/TalentoPlus/internal/messaging/kafka/mock"
	"github.com/JuanDavidBarr/TalentoPlus/internal/position"
	positionMock "github.com/JuanDavidBarr/TalentoPlus/internal/position/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type authDeps struct {
	db          *sql.DB
	sqlMock     sqlmock.Sqlmock
	service     auth.Service
	employees   *employeeMock.MockRepository
	positions   *positionMock.MockRepository
	departments *departmentMock.MockRepository
	publisher   *kafkaMock.MockPublisher
	issuer      *fakeIssuer
}

type fakeIssuer struct {
	token     string
	expiresAt time.Time
	err       error
	lastEmpl  *employee.Employee
}

func (f *fakeIssuer) Issue(empl *employee.Employee) (string, time.Time, error) {
	f.lastEmpl = empl
	return f.token, f.expiresAt, f.err
}

func setupAuthTest(t *testing.T) *authDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	employees := employeeMock.NewMockRepository(ctrl)
	positions := positionMock.NewMockRepository(ctrl)
	departments := departmentMock.NewMockRepository(ctrl)
	publisher := kafkaMock.NewMockPublisher(ctrl)
	issuer := &fakeIssuer{token: "signed-token", expiresAt: time.Now().Add(24 * time.Hour)}

	svc := auth.NewService(db, employees, positions, departments, issuer, publisher)

	return &authDeps{
		db:          db,
		sqlMock:     sqlMock,
		service:     svc,
		employees:   employees,
		positions:   positions,
		departments: departments,
		publisher:   publisher,
		issuer:      issuer,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validRegisterRequest() auth.SelfRegisterRequest {
	return auth.SelfRegisterRequest{
		FirstName:      "Carlos",
		LastName:       "Mendoza",
		DocumentNumber: "900123456",
		Email:          "carlos.mendoza@example.com",
		Phone:          "3109876543",
		BirthDate:      "1995-08-20",
		Address:        "Carrera 7 # 45-10",
		DepartmentID:   3,
	}
}

func TestAuthService_SelfRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success - record starts pending with default position and zero salary", func(t *testing.T) {
		deps := setupAuthTest(t)
		defer deps.db.Close()

		req := validRegisterRequest()

		deps.departments.EXPECT().
			FindByID(ctx, req.DepartmentID).
			Return(&department.Department{ID: req.DepartmentID, Name: "Human Resources"}, nil)
		deps.positions.EXPECT().
			FindByName(ctx, position.DefaultName).
			Return(&position.Position{ID: 4, Name: position.DefaultName}, nil)

		expectTx(t, deps.sqlMock, true)

		deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees)
		deps.employees.EXPECT().
			ExistsByDocumentOrEmail(ctx, req.DocumentNumber, req.Email).
			Return(false, nil)

		deps.employees.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, employee.StatusPending, e.Status)
				assert.Equal(t, float64(0), e.Salary)
				assert.Equal(t, uint(4), e.PositionID)
				assert.False(t, e.HireDate.IsZero())
				e.ID = 11
				return nil
			})

		deps.publisher.EXPECT().
			Publish(ctx, gomock.Any()).
			Return(nil)

		deps.employees.EXPECT().
			FindByID(ctx, uint(11)).
			Return(&employee.Employee{
				ID:           11,
				FirstName:    req.FirstName,
				LastName:     req.LastName,
				Email:        req.Email,
				Status:       employee.StatusPending,
				PositionID:   4,
				Position:     &position.Position{ID: 4, Name: position.DefaultName},
				DepartmentID: req.DepartmentID,
			}, nil)

		resp, err := deps.service.SelfRegister(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(11), resp.ID)
		assert.Equal(t, employee.StatusPending, resp.Status)
		assert.Equal(t, position.DefaultName, resp.PositionName)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("publish failure does not fail the registration", func(t *testing.T) {
		deps := setupAuthTest(t)
		defer deps.db.Close()

		req := validRegisterRequest()

		deps.departments.EXPECT().
			FindByID(ctx, req.DepartmentID).
			Return(&department.Department{ID: req.DepartmentID}, nil)
		deps.positions.EXPECT().
			FindByName(ctx, position.DefaultName).
			Return(&position.Position{ID: 4, Name: position.DefaultName}, nil)

		expectTx(t, deps.sqlMock, true)

		deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees)
		deps.employees.EXPECT().
			ExistsByDocumentOrEmail(ctx, req.DocumentNumber, req.Email).
			Return(false, nil)
		deps.employees.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				e.ID = 12
				return nil
			})

		deps.publisher.EXPECT().
			Publish(ctx, gomock.Any()).
			Return(errors.New("broker unreachable"))

		deps.employees.EXPECT().
			FindByID(ctx, uint(12)).
			Return(&employee.Employee{ID: 12, Status: employee.StatusPending}, nil)

		resp, err := deps.service.SelfRegister(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(12), resp.ID)
	})

	t.Run("document or email already registered -> single combined conflict", func(t *testing.T) {
		deps := setupAuthTest(t)
		defer deps.db.Close()

		req := validRegisterRequest()

		deps.departments.EXPECT().
			FindByID(ctx, req.DepartmentID).
			Return(&department.Department{ID: req.DepartmentID}, nil)
		deps.positions.EXPECT().
			FindByName(ctx, position.DefaultName).
			Return(&position.Position{ID: 4, Name: position.DefaultName}, nil)

		expectTx(t, deps.sqlMock, false)

		deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees)
		deps.employees.EXPECT().
			ExistsByDocumentOrEmail(ctx, req.DocumentNumber, req.Email).
			Return(true, nil)
		deps.employees.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.SelfRegister(ctx, req)

		assert.ErrorIs(t, err, autherrors.ErrAlreadyRegistered)
	})

	t.Run("unknown department", func(t *testing.T) {
		deps := setupAuthTest(t)
		defer deps.db.Close()

		req := validRegisterRequest()

		deps.departments.EXPECT().
			FindByID(ctx, req.DepartmentID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.SelfRegister(ctx, req)

		assert.ErrorIs(t, err, autherrors.ErrDepartmentNotFound)
	})

	t.Run("invalid birth date", func(t *testing.T) {
		deps := setupAuthTest(t)
		defer deps.db.Close()

		req := validRegisterRequest()
		req.BirthDate = "20-08-1995"

		_, err := deps.service.SelfRegister(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidBirthDate)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAuthTest(t)
		defer deps.db.Close()

		req := auth.LoginRequest{DocumentNumber: "900123456", Email: "carlos.mendoza@example.com"}

		deps.employees.EXPECT().
			FindByCredentials(ctx, req.DocumentNumber, req.Email).
			Return(&employee.Employee{
				ID:        11,
				FirstName: "Carlos",
				LastName:  "Mendoza",
				Email:     req.Email,
			}, nil)

		resp, err := deps.service.Login(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, uint(11), resp.Employee.ID)
		assert.Equal(t, "Carlos Mendoza", resp.Employee.FullName)
		assert.Equal(t, uint(11), deps.issuer.lastEmpl.ID)
	})

	t.Run("no match -> invalid credentials, nothing more specific", func(t *testing.T) {
		deps := setupAuthTest(t)
		defer deps.db.Close()

		req := auth.LoginRequest{DocumentNumber: "900123456", Email: "wrong@example.com"}

		deps.employees.EXPECT().
			FindByCredentials(ctx, req.DocumentNumber, req.Email).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Login(ctx, req)

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("store failure is not a credential failure", func(t *testing.T) {
		deps := setupAuthTest(t)
		defer deps.db.Close()

		req := auth.LoginRequest{DocumentNumber: "900123456", Email: "carlos.mendoza@example.com"}

		storeErr := errors.New("connection refused")
		deps.employees.EXPECT().
			FindByCredentials(ctx, req.DocumentNumber, req.Email).
			Return(nil, storeErr)

		_, err := deps.service.Login(ctx, req)

		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("token generation failure", func(t *testing.T) {
		deps := setupAuthTest(t)
		defer deps.db.Close()

		deps.issuer.err = errors.New("bad key")
		req := auth.LoginRequest{DocumentNumber: "900123456", Email: "carlos.mendoza@example.com"}

		deps.employees.EXPECT().
			FindByCredentials(ctx, req.DocumentNumber, req.Email).
			Return(&employee.Employee{ID: 11}, nil)

		_, err := deps.service.Login(ctx, req)

		assert.ErrorIs(t, err, autherrors.ErrTokenGenerationFailed)
	})
}

func TestAuthService_GetMyInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAuthTest(t)
		defer deps.db.Close()

		deps.employees.EXPECT().
			FindByID(ctx, uint(11)).
			Return(&employee.Employee{
				ID:        11,
				FirstName: "Carlos",
				Position:  &position.Position{Name: "Administrative Assistant"},
			}, nil)

		resp, err := deps.service.GetMyInfo(ctx, 11)

		assert.NoError(t, err)
		assert.Equal(t, uint(11), resp.ID)
		assert.Equal(t, "Administrative Assistant", resp.PositionName)
	})

	t.Run("record deleted after token issued", func(t *testing.T) {
		deps := setupAuthTest(t)
		defer deps.db.Close()

		deps.employees.EXPECT().
			FindByID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetMyInfo(ctx, 99)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
