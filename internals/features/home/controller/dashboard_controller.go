package controller

import (
	"github.com/gofiber/fiber/v2"

	svc "classdesk_backend/internals/features/home/service"
	helper "classdesk_backend/internals/helpers"
)

type DashboardController struct {
	Metrics *svc.MetricsService
}

func NewDashboardController(metrics *svc.MetricsService) *DashboardController {
	return &DashboardController{Metrics: metrics}
}

// GetMetrics GET /api/dashboard/metrics
func (ctl *DashboardController) GetMetrics(c *fiber.Ctx) error {
	metrics, err := ctl.Metrics.Metrics(c.UserContext())
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", metrics)
}
