package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardapi "academy_backend/internals/features/dashboard/controller"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	h := dashboardapi.NewDashboardHandler(db)

	grp := api.Group("/dashboard")
	{
		grp.Get("/stats/summary", h.StatsSummary)
		grp.Get("/stats", h.Stats)
		grp.Get("/recent-enrollments", h.RecentEnrollments)
		grp.Get("/popular-courses", h.PopularCourses)
	}
}
