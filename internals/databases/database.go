package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"classdesk_backend/internals/configs"
	academicsModel "classdesk_backend/internals/features/academics/model"
	assessmentModel "classdesk_backend/internals/features/assessment/model"
	attendanceModel "classdesk_backend/internals/features/attendance/model"
	financeModel "classdesk_backend/internals/features/finance/model"
	messagingModel "classdesk_backend/internals/features/messaging/model"
	peopleModel "classdesk_backend/internals/features/people/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=classdesk&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // transaction pooling friendly
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect DB: %v", err)
	}
	DB = db
	log.Println("DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync with the registered models.
func Migrate() {
	if err := DB.AutoMigrate(
		&peopleModel.StudentModel{},
		&peopleModel.TeacherModel{},
		&academicsModel.CourseModel{},
		&academicsModel.BatchModel{},
		&academicsModel.EnrollmentModel{},
		&attendanceModel.AttendanceModel{},
		&assessmentModel.ExamModel{},
		&assessmentModel.ResultModel{},
		&financeModel.FeeModel{},
		&messagingModel.MessageModel{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}
	log.Println("schema migrated.")
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

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
