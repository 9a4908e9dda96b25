package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certifiedapi "academy_backend/internals/features/academics/certified/controller"
)

func CertifiedStudentRoutes(api fiber.Router, db *gorm.DB) {
	h := certifiedapi.NewCertifiedStudentHandler(db)

	grp := api.Group("/certified-students")
	{
		// static path before the :id catch-all
		grp.Get("/student-id/:studentId", h.ByStudentCode)

		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Put("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
