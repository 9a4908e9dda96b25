package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certifiedRoute "academy_backend/internals/features/academics/certified/route"
	courseRoute "academy_backend/internals/features/academics/courses/route"
	studentRoute "academy_backend/internals/features/academics/students/route"
	teacherRoute "academy_backend/internals/features/academics/teachers/route"
	dashboardRoute "academy_backend/internals/features/dashboard/route"
	budgetRoute "academy_backend/internals/features/finance/budget/route"
	feeRoute "academy_backend/internals/features/finance/fees/route"
	salaryRoute "academy_backend/internals/features/finance/salaries/route"
)

// SetupRoutes mounts every feature group under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	courseRoute.CourseRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	teacherRoute.TeacherRoutes(api, db)
	certifiedRoute.CertifiedStudentRoutes(api, db)
	feeRoute.FeeRoutes(api, db)
	salaryRoute.SalaryRoutes(api, db)
	budgetRoute.BudgetRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
}
