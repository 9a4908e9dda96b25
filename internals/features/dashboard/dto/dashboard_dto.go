package dto

import (
	"time"

	"github.com/google/uuid"
)

////////////////////////////////////////////////////////////////////////////////
// DASHBOARD — DTO (read-only projections)
////////////////////////////////////////////////////////////////////////////////

type MonthlyGrowth struct {
	Students   float64 `json:"students"`
	Courses    float64 `json:"courses"`
	Revenue    float64 `json:"revenue"`
	Completion float64 `json:"completion"`
}

type HeadlineStats struct {
	TotalStudents  int64         `json:"totalStudents"`
	ActiveCourses  int64         `json:"activeCourses"`
	TotalRevenue   float64       `json:"totalRevenue"`
	CompletionRate float64       `json:"completionRate"`
	MonthlyGrowth  MonthlyGrowth `json:"monthlyGrowth"`
}

type RecentEnrollment struct {
	ID             uuid.UUID `json:"id"`
	StudentName    string    `json:"studentName"`
	CourseName     string    `json:"courseName"`
	EnrollmentDate time.Time `json:"enrollmentDate"`
	Status         string    `json:"status,omitempty"`
}

type PopularCourse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	StudentCount int       `json:"studentCount"`
}

type StatsResponse struct {
	Stats             HeadlineStats      `json:"stats"`
	RecentEnrollments []RecentEnrollment `json:"recentEnrollments"`
	PopularCourses    []PopularCourse    `json:"popularCourses"`
}

type StatsSummaryResponse struct {
	TotalStudents  int64   `json:"totalStudents"`
	ActiveCourses  int64   `json:"activeCourses"`
	TotalRevenue   float64 `json:"totalRevenue"`
	CompletionRate float64 `json:"completionRate"`
}
