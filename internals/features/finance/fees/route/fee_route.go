package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeapi "academy_backend/internals/features/finance/fees/controller"
)

func FeeRoutes(api fiber.Router, db *gorm.DB) {
	h := feeapi.NewFeeHandler(db)

	grp := api.Group("/fees")
	{
		// static paths before the :id catch-all
		grp.Get("/test", h.Test)
		grp.Get("/summary", h.Summary)
		grp.Get("/student/:studentId", h.ByStudent)

		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Put("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
		grp.Post("/:id/payment", h.AddPayment)
	}
}
