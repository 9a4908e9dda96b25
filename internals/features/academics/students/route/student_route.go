package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentapi "academy_backend/internals/features/academics/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	h := studentapi.NewStudentHandler(db)

	grp := api.Group("/students")
	{
		// static paths before the :id catch-all
		grp.Get("/pending-certificates/summary", h.PendingCertificatesSummary)
		grp.Get("/pending-certificates", h.PendingCertificates)
		grp.Put("/pending-certificates/:id/status", h.UpdateCertificateStatus)
		grp.Get("/course/:courseId", h.ByCourse)

		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Put("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
