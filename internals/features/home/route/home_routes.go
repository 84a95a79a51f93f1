package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "classdesk_backend/internals/features/home/controller"
	svc "classdesk_backend/internals/features/home/service"
)

// HomeRoutes mounts /dashboard under the api group.
func HomeRoutes(api fiber.Router, db *gorm.DB, metricsTTL time.Duration) {
	dashboard := ctl.NewDashboardController(svc.NewMetricsService(db, metricsTTL))
	g := api.Group("/dashboard")
	g.Get("/metrics", dashboard.GetMetrics)
}
