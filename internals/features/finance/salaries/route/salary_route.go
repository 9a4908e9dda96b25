package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	salaryapi "academy_backend/internals/features/finance/salaries/controller"
)

func SalaryRoutes(api fiber.Router, db *gorm.DB) {
	h := salaryapi.NewSalaryHandler(db)

	grp := api.Group("/salaries")
	{
		// static path before the :id catch-all
		grp.Get("/summary", h.Summary)

		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Put("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
