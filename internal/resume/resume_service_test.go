package resume

import (
	"context"
	"testing"
	"time"

	"github.com/JuanDavidBarr/TalentoPlus/internal/department"
	"github.com/JuanDavidBarr/TalentoPlus/internal/employee"
	employeeerrors "github.com/JuanDavidBarr/TalentoPlus/internal/employee/errors"
	employeeMock "github.com/JuanDavidBarr/TalentoPlus/internal/employee/mock"
	"github.com/JuanDavidBarr/TalentoPlus/internal/position"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(t *testing.T, now time.Time) (*service, *employeeMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := employeeMock.NewMockRepository(ctrl)
	return &service{
		employees: repo,
		now:       fixedClock(now),
		logger:    zap.NewNop(),
	}, repo
}

func TestService_Generate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("renders a pdf document", func(t *testing.T) {
		svc, repo := newTestService(t, now)

		repo.EXPECT().
			FindByID(ctx, uint(7)).
			Return(&employee.Employee{
				ID:             7,
				FirstName:      "Laura",
				LastName:       "Gomez",
				DocumentNumber: "1020304050",
				Email:          "laura.gomez@example.com",
				BirthDate:      time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC),
				HireDate:       time.Date(2022, 1, 15, 0, 0, 0, 0, time.UTC),
				Status:         employee.StatusActive,
				Salary:         4500000,
				Position:       &position.Position{Name: "Senior Developer"},
				Department:     &department.Department{Name: "Technology"},
			}, nil)

		pdf, err := svc.Generate(ctx, 7)

		require.NoError(t, err)
		assert.True(t, len(pdf) > 0)
		assert.Equal(t, "%PDF-1.4", string(pdf[:8]))
		assert.Contains(t, string(pdf), "Laura Gomez")
		assert.Contains(t, string(pdf), "Datos de Contacto")
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, repo := newTestService(t, now)

		repo.EXPECT().
			FindByID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Generate(ctx, 99)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestService_CalculateAge(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	t.Run("birthday already passed this year", func(t *testing.T) {
		age := svc.calculateAge(time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 36, age)
	})

	t.Run("birthday not yet reached", func(t *testing.T) {
		age := svc.calculateAge(time.Date(1990, 11, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 35, age)
	})

	t.Run("birthday today", func(t *testing.T) {
		age := svc.calculateAge(time.Date(1990, 8, 30, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 36, age)
	})
}

func TestService_YearsOfService(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	cases := []struct {
		name     string
		hireDate time.Time
		want     string
	}{
		{"whole years", time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), "2 año(s)"},
		{"years and months", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), "1 año(s) y 3 mes(es)"},
		{"months only", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "5 mes(es)"},
		{"under a month", time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), "0 mes(es)"},
		{"day not yet reached borrows a month", time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC), "1 año(s)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.yearsOfService(tc.hireDate))
		})
	}
}
