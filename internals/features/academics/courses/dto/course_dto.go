package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"academy_backend/internals/features/academics/courses/model"
)

////////////////////////////////////////////////////////////////////////////////
// COURSES — DTO
////////////////////////////////////////////////////////////////////////////////

// Create. Includes accepts either a JSON array or a comma-separated string.
type CourseCreateDTO struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=500"`
	Price       *float64 `json:"price" validate:"required,min=0"`
	Duration    string   `json:"duration" validate:"required,max=50"`
	Includes    any      `json:"includes"`
	Image       string   `json:"image"`
	IsActive    *bool    `json:"isActive"`
}

// Update (partial)
type CourseUpdateDTO struct {
	Name        *string  `json:"name" validate:"omitempty,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	Duration    *string  `json:"duration" validate:"omitempty,max=50"`
	Includes    any      `json:"includes"`
	Image       *string  `json:"image"`
	IsActive    *bool    `json:"isActive"`
}

// Response
type CourseResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration"`
	Includes    []string  `json:"includes"`
	Image       string    `json:"image"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CourseLite is the shallow-join shape embedded in student/fee/certificate
// responses.
type CourseLite struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToCourseResponse(m model.Course) CourseResponse {
	return CourseResponse{
		ID:          m.CourseID,
		Name:        m.CourseName,
		Description: m.CourseDescription,
		Price:       m.CoursePrice,
		Duration:    m.CourseDuration,
		Includes:    append([]string{}, m.CourseIncludes...),
		Image:       m.CourseImage,
		IsActive:    m.CourseIsActive,
		CreatedAt:   m.CourseCreatedAt,
		UpdatedAt:   m.CourseUpdatedAt,
	}
}

func ToCourseResponses(list []model.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToCourseResponse(v))
	}
	return out
}

func ToCourseLite(m model.Course) CourseLite {
	return CourseLite{
		ID:          m.CourseID,
		Name:        m.CourseName,
		Description: m.CourseDescription,
		Price:       m.CoursePrice,
	}
}

func CourseCreateDTOToModel(d CourseCreateDTO) model.Course {
	isActive := true
	if d.IsActive != nil {
		isActive = *d.IsActive
	}
	return model.Course{
		CourseName:        strings.TrimSpace(d.Name),
		CourseDescription: strings.TrimSpace(d.Description),
		CoursePrice:       *d.Price,
		CourseDuration:    strings.TrimSpace(d.Duration),
		CourseIncludes:    NormalizeIncludes(d.Includes),
		CourseImage:       strings.TrimSpace(d.Image),
		CourseIsActive:    isActive,
	}
}

// ApplyCourseUpdate mutates only the provided fields.
func ApplyCourseUpdate(m *model.Course, d CourseUpdateDTO) {
	if d.Name != nil {
		m.CourseName = strings.TrimSpace(*d.Name)
	}
	if d.Description != nil {
		m.CourseDescription = strings.TrimSpace(*d.Description)
	}
	if d.Price != nil {
		m.CoursePrice = *d.Price
	}
	if d.Duration != nil {
		m.CourseDuration = strings.TrimSpace(*d.Duration)
	}
	if d.Includes != nil {
		m.CourseIncludes = NormalizeIncludes(d.Includes)
	}
	if d.Image != nil {
		m.CourseImage = strings.TrimSpace(*d.Image)
	}
	if d.IsActive != nil {
		m.CourseIsActive = *d.IsActive
	}
}

// NormalizeIncludes accepts a JSON array of strings or a single
// comma-separated string and returns the trimmed, non-empty items.
func NormalizeIncludes(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		return trimNonEmpty(t)
	case []any:
		items := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok {
				items = append(items, s)
			}
		}
		return trimNonEmpty(items)
	case string:
		return trimNonEmpty(strings.Split(t, ","))
	default:
		return nil
	}
}

func trimNonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}
