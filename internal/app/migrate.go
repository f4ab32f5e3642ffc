package app

import (
	"github.com/JuanDavidBarr/TalentoPlus/internal/department"
	"github.com/JuanDavidBarr/TalentoPlus/internal/employee"
	"github.com/JuanDavidBarr/TalentoPlus/internal/position"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema and plants the reference catalog.
// Seeding is idempotent: rows are matched by name, never duplicated.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&position.Position{},
		&department.Department{},
		&employee.Employee{},
	); err != nil {
		return err
	}

	return seed(db)
}

func seed(db *gorm.DB) error {
	positions := []position.Position{
		{Name: "General Manager", Description: "Overall management responsibility"},
		{Name: "Senior Developer", Description: "Software development and technical leadership"},
		{Name: "HR Analyst", Description: "Human resources management and talent acquisition"},
		{Name: "Administrative Assistant", Description: "Administrative support and office management"},
		{Name: "Project Manager", Description: "Project planning and execution"},
		{Name: "Data Analyst", Description: "Data analysis and reporting"},
	}
	for i := range positions {
		if err := db.Where(position.Position{Name: positions[i].Name}).
			Attrs(position.Position{Description: positions[i].Description}).
			FirstOrCreate(&positions[i]).Error; err != nil {
			return err
		}
	}

	departments := []department.Department{
		{Name: "Management", Description: "Executive leadership and strategic planning"},
		{Name: "Technology", Description: "Development, systems and IT infrastructure"},
		{Name: "Human Resources", Description: "Talent management and organizational development"},
		{Name: "Administration", Description: "Administrative operations and support"},
		{Name: "Finance", Description: "Financial planning and accounting"},
		{Name: "Marketing", Description: "Marketing and communications"},
	}
	for i := range departments {
		if err := db.Where(department.Department{Name: departments[i].Name}).
			Attrs(department.Department{Description: departments[i].Description}).
			FirstOrCreate(&departments[i]).Error; err != nil {
			return err
		}
	}

	zap.L().Named("app.migrate").Info("schema migrated and catalog seeded",
		zap.Int("positions", len(positions)),
		zap.Int("departments", len(departments)),
	)

	return nil
}
