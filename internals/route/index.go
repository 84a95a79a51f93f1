package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classdesk_backend/internals/configs"
	academicsRoute "classdesk_backend/internals/features/academics/route"
	assessmentRoute "classdesk_backend/internals/features/assessment/route"
	attendanceRoute "classdesk_backend/internals/features/attendance/route"
	financeRoute "classdesk_backend/internals/features/finance/route"
	homeRoute "classdesk_backend/internals/features/home/route"
	messagingRoute "classdesk_backend/internals/features/messaging/route"
	peopleRoute "classdesk_backend/internals/features/people/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	api := app.Group("/api")

	log.Println("[INFO] Setting up PeopleRoutes...")
	peopleRoute.PeopleRoutes(api, db, v)

	log.Println("[INFO] Setting up AcademicsRoutes...")
	academicsRoute.AcademicsRoutes(api, db, v)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceRoute.AttendanceRoutes(api, db, v)

	log.Println("[INFO] Setting up AssessmentRoutes...")
	assessmentRoute.AssessmentRoutes(api, db, v)

	log.Println("[INFO] Setting up FinanceRoutes...")
	financeRoute.FinanceRoutes(api, db, v)

	log.Println("[INFO] Setting up MessagingRoutes...")
	messagingRoute.MessagingRoutes(api, db, v)

	log.Println("[INFO] Setting up HomeRoutes...")
	homeRoute.HomeRoutes(api, db, configs.MetricsCacheTTL)
}
