package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"academy_backend/internals/configs"
	certifiedModel "academy_backend/internals/features/academics/certified/model"
	courseModel "academy_backend/internals/features/academics/courses/model"
	studentModel "academy_backend/internals/features/academics/students/model"
	teacherModel "academy_backend/internals/features/academics/teachers/model"
	budgetModel "academy_backend/internals/features/finance/budget/model"
	feeModel "academy_backend/internals/features/finance/fees/model"
	salaryModel "academy_backend/internals/features/finance/salaries/model"
)

var DB *gorm.DB

func ConnectDB(cfg *configs.Config) {
	log.Println("[INFO] connecting to PostgreSQL...")

	// Full DSN with statement_timeout; keep PreferSimpleProtocol for PgBouncer
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=academy&options=-c statement_timeout=3000",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync with the models. Unique indexes declared on
// the models are the last line of defense against races past the pre-checks.
func Migrate() {
	if err := DB.AutoMigrate(
		&courseModel.Course{},
		&studentModel.Student{},
		&teacherModel.Teacher{},
		&certifiedModel.CertifiedStudent{},
		&feeModel.FeeRecord{},
		&salaryModel.SalaryRecord{},
		&budgetModel.BudgetRecord{},
	); err != nil {
		log.Fatalf("[ERROR] migrate failed: %v", err)
	}
	log.Println("[INFO] migrations applied.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
