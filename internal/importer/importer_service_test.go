package importer_test

import (
	"context"
	"testing"

	"github.com/JuanDavidBarr/TalentoPlus/internal/department"
	departmentMock "github.com/JuanDavidBarr/TalentoPlus/internal/department/mock"
	"github.com/JuanDavidBarr/TalentoPlus/internal/employee"
	employeeMock "github.com/JuanDavidBarr/TalentoPlus/internal/employee/mock"
	"github.com/JuanDavidBarr/TalentoPlus/internal/importer"
	"github.com/JuanDavidBarr/TalentoPlus/internal/position"
	positionMock "github.com/JuanDavidBarr/TalentoPlus/internal/position/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeReader struct {
	rows   [][]string
	closed bool
}

func (f *fakeReader) Rows() ([][]string, error) { return f.rows, nil }
func (f *fakeReader) Close() error              { f.closed = true; return nil }

type importerDeps struct {
	service     importer.Service
	employees   *employeeMock.MockRepository
	positions   *positionMock.MockRepository
	departments *departmentMock.MockRepository
	deptCache   *departmentMock.MockService
	reader      *fakeReader
}

func setupImporterTest(t *testing.T, rows [][]string) *importerDeps {
	ctrl := gomock.NewController(t)

	employees := employeeMock.NewMockRepository(ctrl)
	positions := positionMock.NewMockRepository(ctrl)
	departments := departmentMock.NewMockRepository(ctrl)
	deptCache := departmentMock.NewMockService(ctrl)
	reader := &fakeReader{rows: rows}

	svc := importer.NewService(
		employees,
		positions,
		departments,
		deptCache,
		func(path string) (importer.RowReader, error) { return reader, nil },
	)

	return &importerDeps{
		service:     svc,
		employees:   employees,
		positions:   positions,
		departments: departments,
		deptCache:   deptCache,
		reader:      reader,
	}
}

var headerRow = []string{
	"Documento", "Nombres", "Apellidos", "FechaNacimiento", "Direccion",
	"Telefono", "Email", "Cargo", "Salario", "FechaIngreso", "Estado",
	"NivelEducativo", "PerfilProfesional", "Departamento",
}

func TestImporterService_ImportFromFile(t *testing.T) {
	ctx := context.Background()

	t.Run("skips blanks and duplicates, counts only inserted rows", func(t *testing.T) {
		rows := [][]string{
			headerRow,
			// valid, needs a new position and department
			{"100", "Ana", "Lopez", "10/03/1992", "Calle 1", "3001112233", "ana@example.com", "New Role", "$2.000.000", "15/01/2023", "Active", "Bachelor", "Backend developer", "New Area"},
			// missing first name
			{"101", "", "Perez", "01/01/1990", "", "", "no-name@example.com", "Senior Developer", "100", "01/01/2020", "", "", "", "Technology"},
			// duplicate document number
			{"100", "Ana", "Lopez", "10/03/1992", "Calle 1", "", "dup@example.com", "Senior Developer", "100", "01/01/2020", "", "", "", "Technology"},
			// valid, existing catalog rows, blank status and salary
			{"102", "Luis", "Marin", "1994-07-02", "", "", "luis@example.com", "Senior Developer", "", "2021-06-01", "", "", "", "Technology"},
		}
		deps := setupImporterTest(t, rows)

		gomock.InOrder(
			deps.employees.EXPECT().DocumentNumberExists(ctx, "100", uint(0)).Return(false, nil),
			deps.employees.EXPECT().DocumentNumberExists(ctx, "100", uint(0)).Return(true, nil),
			deps.employees.EXPECT().DocumentNumberExists(ctx, "102", uint(0)).Return(false, nil),
		)

		deps.positions.EXPECT().
			FindByName(ctx, "New Role").
			Return(nil, gorm.ErrRecordNotFound)
		deps.positions.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, pos *position.Position) error {
				assert.Equal(t, "New Role", pos.Name)
				assert.Equal(t, "Position imported from Excel", pos.Description)
				pos.ID = 7
				return nil
			})
		deps.positions.EXPECT().
			FindByName(ctx, "Senior Developer").
			Return(&position.Position{ID: 2, Name: "Senior Developer"}, nil)

		deps.departments.EXPECT().
			FindByName(ctx, "New Area").
			Return(nil, gorm.ErrRecordNotFound)
		deps.departments.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, dept *department.Department) error {
				assert.Equal(t, "New Area", dept.Name)
				assert.Equal(t, "Department imported from Excel", dept.Description)
				dept.ID = 8
				return nil
			})
		deps.departments.EXPECT().
			FindByName(ctx, "Technology").
			Return(&department.Department{ID: 2, Name: "Technology"}, nil)

		var inserted []*employee.Employee
		deps.employees.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				inserted = append(inserted, e)
				return nil
			}).
			Times(2)

		// A department was created, so the cached options are stale.
		deps.deptCache.EXPECT().InvalidateCache(ctx)

		result, err := deps.service.ImportFromFile(ctx, "payroll.xlsx")

		require.NoError(t, err)
		assert.Equal(t, 2, result.ImportedCount)
		require.Len(t, inserted, 2)

		first := inserted[0]
		assert.Equal(t, "100", first.DocumentNumber)
		assert.Equal(t, float64(2000000), first.Salary)
		assert.Equal(t, uint(7), first.PositionID)
		assert.Equal(t, uint(8), first.DepartmentID)
		assert.Equal(t, 1992, first.BirthDate.Year())

		second := inserted[1]
		assert.Equal(t, "102", second.DocumentNumber)
		assert.Equal(t, employee.StatusActive, second.Status)
		assert.Equal(t, float64(0), second.Salary)
		assert.True(t, deps.reader.closed)
	})

	t.Run("a failing row does not abort the rest", func(t *testing.T) {
		rows := [][]string{
			headerRow,
			{"200", "Rosa", "Diaz", "01/01/1991", "", "", "rosa@example.com", "HR Analyst", "100", "01/01/2020", "Active", "", "", "Human Resources"},
			{"201", "Ivan", "Soto", "01/01/1991", "", "", "ivan@example.com", "HR Analyst", "100", "01/01/2020", "Active", "", "", "Human Resources"},
		}
		deps := setupImporterTest(t, rows)

		deps.employees.EXPECT().DocumentNumberExists(ctx, "200", uint(0)).Return(false, nil)
		deps.employees.EXPECT().DocumentNumberExists(ctx, "201", uint(0)).Return(false, nil)

		deps.positions.EXPECT().
			FindByName(ctx, "HR Analyst").
			Return(&position.Position{ID: 3, Name: "HR Analyst"}, nil).
			Times(2)
		deps.departments.EXPECT().
			FindByName(ctx, "Human Resources").
			Return(&department.Department{ID: 3, Name: "Human Resources"}, nil).
			Times(2)

		gomock.InOrder(
			deps.employees.EXPECT().Create(ctx, gomock.Any()).Return(assert.AnError),
			deps.employees.EXPECT().Create(ctx, gomock.Any()).Return(nil),
		)

		result, err := deps.service.ImportFromFile(ctx, "payroll.xlsx")

		require.NoError(t, err)
		assert.Equal(t, 1, result.ImportedCount)
	})

	t.Run("empty sheet imports nothing", func(t *testing.T) {
		deps := setupImporterTest(t, [][]string{headerRow})

		result, err := deps.service.ImportFromFile(ctx, "empty.xlsx")

		require.NoError(t, err)
		assert.Equal(t, 0, result.ImportedCount)
	})
}
