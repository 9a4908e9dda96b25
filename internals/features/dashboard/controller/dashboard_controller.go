package controller

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "academy_backend/internals/features/academics/courses/model"
	studentModel "academy_backend/internals/features/academics/students/model"
	"academy_backend/internals/features/dashboard/dto"
	"academy_backend/internals/features/dashboard/service"
	budgetModel "academy_backend/internals/features/finance/budget/model"
	helper "academy_backend/internals/helpers"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

// -----------------------------------------
// Stats (GET /api/dashboard/stats)
// Headline numbers with month-over-month growth, the latest active
// enrollments, and the busiest courses.
// -----------------------------------------
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	now := time.Now()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := currentMonth.AddDate(0, -1, 0)
	lastMonthEnd := currentMonth.Add(-time.Nanosecond)

	// Students
	activeStudents, err := h.countStudents("student_course_status = ?", studentModel.CourseStatusActive)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	prevActiveStudents, err := h.countStudents("student_course_status = ? AND student_created_at < ?", studentModel.CourseStatusActive, currentMonth)
	if err != nil {
		return helper.JsonServerError(c, err)
	}

	// Courses
	var activeCourses, prevActiveCourses int64
	if err := h.DB.Model(&courseModel.Course{}).Where("course_is_active = ?", true).Count(&activeCourses).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	if err := h.DB.Model(&courseModel.Course{}).
		Where("course_is_active = ? AND course_created_at < ?", true, currentMonth).
		Count(&prevActiveCourses).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	// Revenue from the budget ledger, current vs prior calendar month
	revenue, err := h.sumIncome(currentMonth, now)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	prevRevenue, err := h.sumIncome(lastMonth, lastMonthEnd)
	if err != nil {
		return helper.JsonServerError(c, err)
	}

	// Completion
	certified, err := h.countStudents("student_certificate_status = ?", studentModel.CertificateStatusCertified)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	totalStudents, err := h.countStudents("")
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	prevCertified, err := h.countStudents("student_certificate_status = ? AND student_updated_at < ?", studentModel.CertificateStatusCertified, currentMonth)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	prevTotal, err := h.countStudents("student_created_at < ?", currentMonth)
	if err != nil {
		return helper.JsonServerError(c, err)
	}

	completionRate := service.Rate(certified, totalStudents)
	prevCompletionRate := service.Rate(prevCertified, prevTotal)

	recent, err := h.recentEnrollments(5, false)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	popular, err := h.popularCourses(5)
	if err != nil {
		return helper.JsonServerError(c, err)
	}

	return helper.JsonData(c, dto.StatsResponse{
		Stats: dto.HeadlineStats{
			TotalStudents:  activeStudents,
			ActiveCourses:  activeCourses,
			TotalRevenue:   revenue,
			CompletionRate: completionRate,
			MonthlyGrowth: dto.MonthlyGrowth{
				Students:   service.Growth(float64(activeStudents), float64(prevActiveStudents)),
				Courses:    service.Growth(float64(activeCourses), float64(prevActiveCourses)),
				Revenue:    service.Growth(revenue, prevRevenue),
				Completion: service.RateDifference(completionRate, prevCompletionRate),
			},
		},
		RecentEnrollments: recent,
		PopularCourses:    popular,
	})
}

// -----------------------------------------
// StatsSummary (GET /api/dashboard/stats/summary)
// -----------------------------------------
func (h *DashboardHandler) StatsSummary(c *fiber.Ctx) error {
	now := time.Now()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	activeStudents, err := h.countStudents("student_course_status = ?", studentModel.CourseStatusActive)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	var activeCourses int64
	if err := h.DB.Model(&courseModel.Course{}).Where("course_is_active = ?", true).Count(&activeCourses).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	revenue, err := h.sumIncome(currentMonth, now)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	certified, err := h.countStudents("student_certificate_status = ?", studentModel.CertificateStatusCertified)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	totalStudents, err := h.countStudents("")
	if err != nil {
		return helper.JsonServerError(c, err)
	}

	return helper.JsonData(c, dto.StatsSummaryResponse{
		TotalStudents:  activeStudents,
		ActiveCourses:  activeCourses,
		TotalRevenue:   revenue,
		CompletionRate: service.Rate(certified, totalStudents),
	})
}

// -----------------------------------------
// RecentEnrollments (GET /api/dashboard/recent-enrollments)
// -----------------------------------------
func (h *DashboardHandler) RecentEnrollments(c *fiber.Ctx) error {
	recent, err := h.recentEnrollments(10, true)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonData(c, recent)
}

// -----------------------------------------
// PopularCourses (GET /api/dashboard/popular-courses)
// -----------------------------------------
func (h *DashboardHandler) PopularCourses(c *fiber.Ctx) error {
	popular, err := h.popularCourses(10)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonData(c, popular)
}

func (h *DashboardHandler) countStudents(cond string, args ...any) (int64, error) {
	var n int64
	q := h.DB.Model(&studentModel.Student{})
	if cond != "" {
		q = q.Where(cond, args...)
	}
	err := q.Count(&n).Error
	return n, err
}

func (h *DashboardHandler) sumIncome(from, to time.Time) (float64, error) {
	var total float64
	err := h.DB.Model(&budgetModel.BudgetRecord{}).
		Select("COALESCE(SUM(budget_amount), 0)").
		Where("budget_category = ? AND budget_date >= ? AND budget_date <= ?", budgetModel.BudgetCategoryIncome, from, to).
		Scan(&total).Error
	return total, err
}

func (h *DashboardHandler) recentEnrollments(limit int, withStatus bool) ([]dto.RecentEnrollment, error) {
	var students []studentModel.Student
	if err := h.DB.Where("student_course_status = ?", studentModel.CourseStatusActive).
		Order("student_created_at DESC").
		Limit(limit).
		Find(&students).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.StudentCourseID)
	}
	courses, err := courseModel.MapByIDs(h.DB, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RecentEnrollment, 0, len(students))
	for _, s := range students {
		courseName := "Unknown Course"
		if c, ok := courses[s.StudentCourseID]; ok {
			courseName = c.CourseName
		}
		e := dto.RecentEnrollment{
			ID:             s.StudentID,
			StudentName:    s.StudentName,
			CourseName:     courseName,
			EnrollmentDate: s.StudentCreatedAt,
		}
		if withStatus {
			e.Status = string(s.StudentCourseStatus)
		}
		out = append(out, e)
	}
	return out, nil
}

func (h *DashboardHandler) popularCourses(limit int) ([]dto.PopularCourse, error) {
	var students []studentModel.Student
	if err := h.DB.Select("student_course_id").
		Where("student_course_status = ?", studentModel.CourseStatusActive).
		Find(&students).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int)
	for _, s := range students {
		counts[s.StudentCourseID]++
	}
	ids := make([]uuid.UUID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	courses, err := courseModel.MapByIDs(h.DB, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PopularCourse, 0, len(counts))
	for id, n := range counts {
		course, ok := courses[id]
		if !ok {
			continue
		}
		out = append(out, dto.PopularCourse{
			ID:           id,
			Name:         course.CourseName,
			StudentCount: n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StudentCount != out[j].StudentCount {
			return out[i].StudentCount > out[j].StudentCount
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
