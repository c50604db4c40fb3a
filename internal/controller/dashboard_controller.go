package controller

import (
	"time"

	"superisi_backend/internal/model"
	"superisi_backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard yönetim panelinin özet bloğunu ve günlük seriyi döner
func GetDashboard(c *fiber.Ctx) error {
	noCache(c)

	appointments, err := appointmentsStore.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch appointments",
		})
	}

	stats, err := appointmentsStore.VisitorStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch visitor stats",
		})
	}

	totalProducts, err := productsStore.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch product count",
		})
	}

	var pending, approved, rejected int
	for _, appt := range appointments {
		switch appt.Status {
		case model.AppointmentStatusPending:
			pending++
		case model.AppointmentStatusApproved:
			approved++
		case model.AppointmentStatusRejected:
			rejected++
		}
	}

	days := c.QueryInt("days", 7)
	series := store.BuildDashboardSeries(appointments, stats.DailyCounts, days, time.Now())

	return c.JSON(fiber.Map{
		"totalProducts":        totalProducts,
		"totalVisitors":        stats.TotalVisitors,
		"totalAppointments":    len(appointments),
		"pendingAppointments":  pending,
		"approvedAppointments": approved,
		"rejectedAppointments": rejected,
		"series":               series,
	})
}
