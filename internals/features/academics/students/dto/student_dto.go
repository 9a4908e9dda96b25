package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	courseDTO "academy_backend/internals/features/academics/courses/dto"
	courseModel "academy_backend/internals/features/academics/courses/model"
	"academy_backend/internals/features/academics/students/model"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENTS — DTO
////////////////////////////////////////////////////////////////////////////////

// Create
type StudentCreateDTO struct {
	StudentID    string     `json:"studentId" validate:"required,max=20"`
	Name         string     `json:"name" validate:"required,max=100"`
	FatherName   string     `json:"fatherName" validate:"required,max=100"`
	Course       uuid.UUID  `json:"course" validate:"required"`
	JoiningDate  *time.Time `json:"joiningDate"`
	CourseStatus *string    `json:"courseStatus"`
}

// Update (partial). Certificate status is not settable here; it has its own
// transition endpoint.
type StudentUpdateDTO struct {
	StudentID    *string    `json:"studentId" validate:"omitempty,max=20"`
	Name         *string    `json:"name" validate:"omitempty,max=100"`
	FatherName   *string    `json:"fatherName" validate:"omitempty,max=100"`
	Course       *uuid.UUID `json:"course"`
	JoiningDate  *time.Time `json:"joiningDate"`
	CourseStatus *string    `json:"courseStatus"`
}

// Certificate status transition
type CertificateStatusUpdateDTO struct {
	CertificateStatus string `json:"certificateStatus" validate:"required"`
}

// Response
type StudentResponse struct {
	ID                     uuid.UUID             `json:"id"`
	StudentID              string                `json:"studentId"`
	Name                   string                `json:"name"`
	FatherName             string                `json:"fatherName"`
	Course                 *courseDTO.CourseLite `json:"course"`
	JoiningDate            time.Time             `json:"joiningDate"`
	CourseStatus           string                `json:"courseStatus"`
	CertificateStatus      string                `json:"certificateStatus"`
	CertificateRequestDate *time.Time            `json:"certificateRequestDate,omitempty"`
	CompletionDate         *time.Time            `json:"completionDate,omitempty"`
	CreatedAt              time.Time             `json:"createdAt"`
	UpdatedAt              time.Time             `json:"updatedAt"`
}

// Pending-certificate summary block
type CertificateSummaryResponse struct {
	NotRequested int64 `json:"not_requested"`
	Pending      int64 `json:"pending"`
	UnderReview  int64 `json:"under_review"`
	Certified    int64 `json:"certified"`
	Rejected     int64 `json:"rejected"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

// ToStudentResponse resolves the course from a pre-fetched lookup map.
func ToStudentResponse(m model.Student, courses map[uuid.UUID]courseModel.Course) StudentResponse {
	var course *courseDTO.CourseLite
	if c, ok := courses[m.StudentCourseID]; ok {
		lite := courseDTO.ToCourseLite(c)
		course = &lite
	}
	return StudentResponse{
		ID:                     m.StudentID,
		StudentID:              m.StudentCode,
		Name:                   m.StudentName,
		FatherName:             m.StudentFatherName,
		Course:                 course,
		JoiningDate:            m.StudentJoiningDate,
		CourseStatus:           string(m.StudentCourseStatus),
		CertificateStatus:      string(m.StudentCertificateStatus),
		CertificateRequestDate: m.StudentCertificateRequestDate,
		CompletionDate:         m.StudentCompletionDate,
		CreatedAt:              m.StudentCreatedAt,
		UpdatedAt:              m.StudentUpdatedAt,
	}
}

func ToStudentResponses(list []model.Student, courses map[uuid.UUID]courseModel.Course) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToStudentResponse(v, courses))
	}
	return out
}

func StudentCreateDTOToModel(d StudentCreateDTO, now time.Time) model.Student {
	joining := now
	if d.JoiningDate != nil {
		joining = *d.JoiningDate
	}
	status := model.CourseStatusActive
	if d.CourseStatus != nil && model.ValidCourseStatus(strings.ToLower(*d.CourseStatus)) {
		status = model.CourseStatus(strings.ToLower(*d.CourseStatus))
	}
	return model.Student{
		StudentCode:              NormalizeStudentCode(d.StudentID),
		StudentName:              strings.TrimSpace(d.Name),
		StudentFatherName:        strings.TrimSpace(d.FatherName),
		StudentCourseID:          d.Course,
		StudentJoiningDate:       joining,
		StudentCourseStatus:      status,
		StudentCertificateStatus: model.CertificateStatusNotRequested,
	}
}

// ApplyStudentUpdate mutates only the provided fields.
func ApplyStudentUpdate(m *model.Student, d StudentUpdateDTO) {
	if d.StudentID != nil {
		m.StudentCode = NormalizeStudentCode(*d.StudentID)
	}
	if d.Name != nil {
		m.StudentName = strings.TrimSpace(*d.Name)
	}
	if d.FatherName != nil {
		m.StudentFatherName = strings.TrimSpace(*d.FatherName)
	}
	if d.Course != nil {
		m.StudentCourseID = *d.Course
	}
	if d.JoiningDate != nil {
		m.StudentJoiningDate = *d.JoiningDate
	}
	if d.CourseStatus != nil {
		m.StudentCourseStatus = model.CourseStatus(strings.ToLower(strings.TrimSpace(*d.CourseStatus)))
	}
}

// NormalizeStudentCode trims and uppercases the human-readable code.
func NormalizeStudentCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CourseIDs collects the distinct course refs for a lookup fetch.
func CourseIDs(list []model.Student) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(list))
	out := make([]uuid.UUID, 0, len(list))
	for _, s := range list {
		if _, ok := seen[s.StudentCourseID]; ok {
			continue
		}
		seen[s.StudentCourseID] = struct{}{}
		out = append(out, s.StudentCourseID)
	}
	return out
}
