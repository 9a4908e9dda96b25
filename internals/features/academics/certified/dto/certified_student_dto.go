package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"academy_backend/internals/features/academics/certified/model"
	courseModel "academy_backend/internals/features/academics/courses/model"
)

////////////////////////////////////////////////////////////////////////////////
// CERTIFIED STUDENTS — DTO
////////////////////////////////////////////////////////////////////////////////

// Create
type CertifiedStudentCreateDTO struct {
	StudentID  string     `json:"studentId" validate:"required,max=20"`
	Name       string     `json:"name" validate:"required,max=100"`
	FatherName string     `json:"fatherName" validate:"required,max=100"`
	Course     uuid.UUID  `json:"course" validate:"required"`
	StartDate  time.Time  `json:"startDate" validate:"required"`
	EndDate    *time.Time `json:"endDate"`
}

// Update (partial)
type CertifiedStudentUpdateDTO struct {
	StudentID  *string    `json:"studentId" validate:"omitempty,max=20"`
	Name       *string    `json:"name" validate:"omitempty,max=100"`
	FatherName *string    `json:"fatherName" validate:"omitempty,max=100"`
	Course     *uuid.UUID `json:"course"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
}

// Course join block
type CertifiedCourse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// Response
type CertifiedStudentResponse struct {
	ID         uuid.UUID        `json:"id"`
	StudentID  string           `json:"studentId"`
	Name       string           `json:"name"`
	FatherName string           `json:"fatherName"`
	Course     *CertifiedCourse `json:"course"`
	StartDate  time.Time        `json:"startDate"`
	EndDate    time.Time        `json:"endDate"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToCertifiedStudentResponse(m model.CertifiedStudent, courses map[uuid.UUID]courseModel.Course) CertifiedStudentResponse {
	var course *CertifiedCourse
	if c, ok := courses[m.CertifiedStudentCourseID]; ok {
		course = &CertifiedCourse{
			ID:          c.CourseID,
			Name:        c.CourseName,
			Description: c.CourseDescription,
		}
	}
	return CertifiedStudentResponse{
		ID:         m.CertifiedStudentID,
		StudentID:  m.CertifiedStudentCode,
		Name:       m.CertifiedStudentName,
		FatherName: m.CertifiedStudentFatherName,
		Course:     course,
		StartDate:  m.CertifiedStudentStartDate,
		EndDate:    m.CertifiedStudentEndDate,
		CreatedAt:  m.CertifiedStudentCreatedAt,
		UpdatedAt:  m.CertifiedStudentUpdatedAt,
	}
}

func ToCertifiedStudentResponses(list []model.CertifiedStudent, courses map[uuid.UUID]courseModel.Course) []CertifiedStudentResponse {
	out := make([]CertifiedStudentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToCertifiedStudentResponse(v, courses))
	}
	return out
}

func CertifiedStudentCreateDTOToModel(d CertifiedStudentCreateDTO, now time.Time) model.CertifiedStudent {
	end := now
	if d.EndDate != nil {
		end = *d.EndDate
	}
	return model.CertifiedStudent{
		CertifiedStudentCode:       NormalizeCode(d.StudentID),
		CertifiedStudentName:       strings.TrimSpace(d.Name),
		CertifiedStudentFatherName: strings.TrimSpace(d.FatherName),
		CertifiedStudentCourseID:   d.Course,
		CertifiedStudentStartDate:  d.StartDate,
		CertifiedStudentEndDate:    end,
	}
}

// ApplyCertifiedStudentUpdate mutates only the provided fields.
func ApplyCertifiedStudentUpdate(m *model.CertifiedStudent, d CertifiedStudentUpdateDTO) {
	if d.StudentID != nil {
		m.CertifiedStudentCode = NormalizeCode(*d.StudentID)
	}
	if d.Name != nil {
		m.CertifiedStudentName = strings.TrimSpace(*d.Name)
	}
	if d.FatherName != nil {
		m.CertifiedStudentFatherName = strings.TrimSpace(*d.FatherName)
	}
	if d.Course != nil {
		m.CertifiedStudentCourseID = *d.Course
	}
	if d.StartDate != nil {
		m.CertifiedStudentStartDate = *d.StartDate
	}
	if d.EndDate != nil {
		m.CertifiedStudentEndDate = *d.EndDate
	}
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CourseIDs collects the distinct course refs for a lookup fetch.
func CourseIDs(list []model.CertifiedStudent) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(list))
	out := make([]uuid.UUID, 0, len(list))
	for _, s := range list {
		if _, ok := seen[s.CertifiedStudentCourseID]; ok {
			continue
		}
		seen[s.CertifiedStudentCourseID] = struct{}{}
		out = append(out, s.CertifiedStudentCourseID)
	}
	return out
}
