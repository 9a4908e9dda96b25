package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseapi "academy_backend/internals/features/academics/courses/controller"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	h := &courseapi.CourseHandler{DB: db}

	grp := api.Group("/courses")
	{
		grp.Get("/test", h.Test)
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Put("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
