package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/features/academics/courses/dto"
	"academy_backend/internals/features/academics/courses/model"
	helper "academy_backend/internals/helpers"
)

type CourseHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// Test (GET /api/courses/test)
// -----------------------------------------
func (h *CourseHandler) Test(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"message":   "Course API is working!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// -----------------------------------------
// Create (POST /api/courses)
// -----------------------------------------
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var in dto.CourseCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := dto.CourseCreateDTOToModel(in)

	// Pre-check so the usual path gets a clean message; the unique index
	// still backstops concurrent creates.
	var n int64
	if err := h.DB.Model(&model.Course{}).Where("course_name = ?", m.CourseName).Count(&n).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course with this name already exists")
	}

	if err := h.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Course with this name already exists")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonCreated(c, "Course created successfully", dto.ToCourseResponse(m))
}

// -----------------------------------------
// List (GET /api/courses)
// Query: isActive=true|false (default: active only), page, limit
// -----------------------------------------
func (h *CourseHandler) List(c *fiber.Ctx) error {
	p := helper.ParsePaging(c, 50)

	q := h.DB.Model(&model.Course{})
	switch c.Query("isActive") {
	case "true":
		q = q.Where("course_is_active = ?", true)
	case "false":
		q = q.Where("course_is_active = ?", false)
	default:
		q = q.Where("course_is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	var list []model.Course
	if err := q.Order("course_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	return helper.JsonList(c, dto.ToCourseResponses(list), helper.BuildPagination(total, p), nil)
}

// -----------------------------------------
// GetByID (GET /api/courses/:id)
// -----------------------------------------
func (h *CourseHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	var m model.Course
	if err := h.DB.First(&m, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonData(c, dto.ToCourseResponse(m))
}

// -----------------------------------------
// Update (PUT /api/courses/:id)
// -----------------------------------------
func (h *CourseHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	var in dto.CourseUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.Course
	if err := h.DB.First(&m, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonServerError(c, err)
	}

	// Re-check name uniqueness only when it actually changes
	if in.Name != nil {
		var n int64
		if err := h.DB.Model(&model.Course{}).
			Where("course_name = ? AND course_id <> ?", *in.Name, id).
			Count(&n).Error; err != nil {
			return helper.JsonServerError(c, err)
		}
		if n > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Course with this name already exists")
		}
	}

	dto.ApplyCourseUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Course with this name already exists")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonUpdated(c, "Course updated successfully", dto.ToCourseResponse(m))
}

// -----------------------------------------
// Delete (DELETE /api/courses/:id)
// -----------------------------------------
func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	res := h.DB.Delete(&model.Course{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.JsonServerError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonDeleted(c, "Course deleted successfully")
}
