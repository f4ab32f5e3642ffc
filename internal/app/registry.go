package app

import (
	"database/sql"

	"github.com/JuanDavidBarr/TalentoPlus/internal/auth"
	"github.com/JuanDavidBarr/TalentoPlus/internal/config"
	"github.com/JuanDavidBarr/TalentoPlus/internal/department"
	"github.com/JuanDavidBarr/TalentoPlus/internal/employee"
	"github.com/JuanDavidBarr/TalentoPlus/internal/importer"
	"github.com/JuanDavidBarr/TalentoPlus/internal/messaging/kafka"
	"github.com/JuanDavidBarr/TalentoPlus/internal/middleware"
	"github.com/JuanDavidBarr/TalentoPlus/internal/position"
	"github.com/JuanDavidBarr/TalentoPlus/internal/resume"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	publisher kafka.Publisher,
) error {
	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)

	// --- Services ---
	departmentService := department.NewService(departmentRepo, rdb)
	employeeService := employee.NewService(db, employeeRepo, positionRepo, departmentRepo)
	tokenIssuer := auth.NewTokenIssuer(cfg.JWT)
	authService := auth.NewService(db, employeeRepo, positionRepo, departmentRepo, tokenIssuer, publisher)
	importerService := importer.NewService(employeeRepo, positionRepo, departmentRepo, departmentService, nil)
	resumeService := resume.NewService(employeeRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	importerHandler := importer.NewHandler(importerService, cfg.Import.UploadDir)
	resumeHandler := resume.NewHandler(resumeService)

	authMW := middleware.AuthMiddleware(cfg.JWT)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler, authMW)
		importer.RegisterRoutes(api, importerHandler, authMW)
		resume.RegisterRoutes(api, resumeHandler, authMW)
	}

	return nil
}
