package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherapi "academy_backend/internals/features/academics/teachers/controller"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	h := teacherapi.NewTeacherHandler(db)

	grp := api.Group("/teachers")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Put("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
