package main

import (
	"os"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/branch"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/company"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/employee"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/message"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/report"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/connection"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/task"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The outbox and counter tables are managed with raw SQL elsewhere, so their
// schema lives here instead of on gorm-tagged structs.
const rawSchema = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload JSONB NOT NULL,
	status TEXT NOT NULL,
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_status ON outbox_events (status, next_retry_at);

CREATE TABLE IF NOT EXISTS company_counters (
	company_id UUID NOT NULL,
	counter_type TEXT NOT NULL,
	last_value BIGINT NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (company_id, counter_type)
);

CREATE UNIQUE INDEX IF NOT EXISTS uq_branch_main_per_company
	ON branches (company_id) WHERE is_main;
`

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}

	err = gormDB.AutoMigrate(
		&company.Company{},
		&branch.Branch{},
		&employee.Employee{},
		&report.DailyReport{},
		&task.Task{},
		&task.TaskCompletion{},
		&message.Message{},
	)
	if err != nil {
		logger.Fatal("auto migrate failed", zap.Error(err))
	}

	if err := gormDB.Exec(rawSchema).Error; err != nil {
		logger.Fatal("raw schema migrate failed", zap.Error(err))
	}

	logger.Info("migration complete")
}
