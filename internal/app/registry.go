package app

import (
	"github.com/Akhand-Replit/Akhand-office-v2/internal/auth"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/branch"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/company"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/employee"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/message"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/messaging/kafka"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/rbac"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/rbac/infra"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/report"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/counter"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	branchRepo := branch.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	messageRepo := message.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	branchService := branch.NewService(gormDB, branchRepo)
	companyService := company.NewService(gormDB, companyRepo)
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, counterRepo, outboxRepo, rdb)
	messageService := message.NewService(messageRepo, rdb)
	reportService := report.NewService(reportRepo)
	taskService := task.NewServiceWithOutbox(gormDB, taskRepo, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	branchHandler := branch.NewHandler(branchService)
	companyHandler := company.NewHandler(companyService)
	employeeHandler := employee.NewHandler(employeeService)
	messageHandler := message.NewHandler(messageService)
	reportHandler := report.NewHandler(reportService)
	taskHandler := task.NewHandler(taskService)

	// --- Routes Registration ---
	logger := zap.L()
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		branch.RegisterRoutes(api, branchHandler, rbacService, logger)
		company.RegisterRoutes(api, companyHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		message.RegisterRoutes(api, messageHandler, rbacService, logger)
		report.RegisterRoutes(api, reportHandler, rbacService, logger)
		task.RegisterRoutes(api, taskHandler, rbacService, logger)
	}

	return nil
}
