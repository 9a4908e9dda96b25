package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	courseModel "academy_backend/internals/features/academics/courses/model"
	"academy_backend/internals/features/academics/teachers/model"
)

////////////////////////////////////////////////////////////////////////////////
// TEACHERS — DTO
////////////////////////////////////////////////////////////////////////////////

// Create
type TeacherCreateDTO struct {
	TeacherID       string      `json:"teacherId" validate:"required,max=20"`
	Name            string      `json:"name" validate:"required,max=100"`
	Qualification   string      `json:"qualification" validate:"omitempty,max=200"`
	Specialization  string      `json:"specialization" validate:"omitempty,max=100"`
	AssignedCourses []uuid.UUID `json:"assignedCourses"`
	JoiningDate     *time.Time  `json:"joiningDate"`
}

// Update (partial)
type TeacherUpdateDTO struct {
	TeacherID       *string      `json:"teacherId" validate:"omitempty,max=20"`
	Name            *string      `json:"name" validate:"omitempty,max=100"`
	Qualification   *string      `json:"qualification" validate:"omitempty,max=200"`
	Specialization  *string      `json:"specialization" validate:"omitempty,max=100"`
	AssignedCourses *[]uuid.UUID `json:"assignedCourses"`
	JoiningDate     *time.Time   `json:"joiningDate"`
}

// Assigned course join block
type AssignedCourse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// Response
type TeacherResponse struct {
	ID              uuid.UUID        `json:"id"`
	TeacherID       string           `json:"teacherId"`
	Name            string           `json:"name"`
	Qualification   string           `json:"qualification"`
	Specialization  string           `json:"specialization"`
	AssignedCourses []AssignedCourse `json:"assignedCourses"`
	JoiningDate     time.Time        `json:"joiningDate"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

// ToTeacherResponse resolves assigned courses from a pre-fetched lookup map.
// Dangling refs are skipped rather than failing the response.
func ToTeacherResponse(m model.Teacher, courses map[uuid.UUID]courseModel.Course) TeacherResponse {
	assigned := make([]AssignedCourse, 0, len(m.TeacherCourseIDs))
	for _, id := range m.TeacherCourseIDs {
		c, ok := courses[id]
		if !ok {
			continue
		}
		assigned = append(assigned, AssignedCourse{
			ID:          c.CourseID,
			Name:        c.CourseName,
			Description: c.CourseDescription,
		})
	}
	return TeacherResponse{
		ID:              m.TeacherID,
		TeacherID:       m.TeacherCode,
		Name:            m.TeacherName,
		Qualification:   m.TeacherQualification,
		Specialization:  m.TeacherSpecialization,
		AssignedCourses: assigned,
		JoiningDate:     m.TeacherJoiningDate,
		CreatedAt:       m.TeacherCreatedAt,
		UpdatedAt:       m.TeacherUpdatedAt,
	}
}

func ToTeacherResponses(list []model.Teacher, courses map[uuid.UUID]courseModel.Course) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToTeacherResponse(v, courses))
	}
	return out
}

func TeacherCreateDTOToModel(d TeacherCreateDTO, now time.Time) model.Teacher {
	joining := now
	if d.JoiningDate != nil {
		joining = *d.JoiningDate
	}
	return model.Teacher{
		TeacherCode:           NormalizeTeacherCode(d.TeacherID),
		TeacherName:           strings.TrimSpace(d.Name),
		TeacherQualification:  strings.TrimSpace(d.Qualification),
		TeacherSpecialization: strings.TrimSpace(d.Specialization),
		TeacherCourseIDs:      datatypes.JSONSlice[uuid.UUID](dedupeCourseIDs(d.AssignedCourses)),
		TeacherJoiningDate:    joining,
	}
}

// ApplyTeacherUpdate mutates only the provided fields.
func ApplyTeacherUpdate(m *model.Teacher, d TeacherUpdateDTO) {
	if d.TeacherID != nil {
		m.TeacherCode = NormalizeTeacherCode(*d.TeacherID)
	}
	if d.Name != nil {
		m.TeacherName = strings.TrimSpace(*d.Name)
	}
	if d.Qualification != nil {
		m.TeacherQualification = strings.TrimSpace(*d.Qualification)
	}
	if d.Specialization != nil {
		m.TeacherSpecialization = strings.TrimSpace(*d.Specialization)
	}
	if d.AssignedCourses != nil {
		m.TeacherCourseIDs = datatypes.JSONSlice[uuid.UUID](dedupeCourseIDs(*d.AssignedCourses))
	}
	if d.JoiningDate != nil {
		m.TeacherJoiningDate = *d.JoiningDate
	}
}

// NormalizeTeacherCode trims and uppercases the human-readable code.
func NormalizeTeacherCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CourseIDs collects distinct assigned-course refs across teachers for a
// lookup fetch.
func CourseIDs(list []model.Teacher) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	out := make([]uuid.UUID, 0)
	for _, t := range list {
		for _, id := range t.TeacherCourseIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func dedupeCourseIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
