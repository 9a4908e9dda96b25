package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	budgetapi "academy_backend/internals/features/finance/budget/controller"
)

func BudgetRoutes(api fiber.Router, db *gorm.DB) {
	h := budgetapi.NewBudgetHandler(db)

	grp := api.Group("/budget")
	{
		grp.Get("/overview", h.Overview)
		grp.Post("/sync", h.SyncRecords)

		grp.Get("/records", h.Records)
		grp.Post("/records", h.Create)
		grp.Put("/records/:id", h.Update)
		grp.Delete("/records/:id", h.Delete)
	}
}
