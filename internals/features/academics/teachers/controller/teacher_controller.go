package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "academy_backend/internals/features/academics/courses/model"
	"academy_backend/internals/features/academics/teachers/dto"
	"academy_backend/internals/features/academics/teachers/model"
	helper "academy_backend/internals/helpers"
)

type TeacherHandler struct {
	DB *gorm.DB
}

func NewTeacherHandler(db *gorm.DB) *TeacherHandler {
	return &TeacherHandler{DB: db}
}

// -----------------------------------------
// Create (POST /api/teachers)
// -----------------------------------------
func (h *TeacherHandler) Create(c *fiber.Ctx) error {
	var in dto.TeacherCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	code := dto.NormalizeTeacherCode(in.TeacherID)
	if !model.TeacherCodePattern.MatchString(code) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Teacher ID must contain only uppercase letters, numbers, hyphens and underscores")
	}

	if err := h.checkAssignedCourses(in.AssignedCourses); err != nil {
		return respondCourseCheck(c, err)
	}

	var n int64
	if err := h.DB.Model(&model.Teacher{}).Where("teacher_code = ?", code).Count(&n).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Teacher with this ID already exists")
	}

	m := dto.TeacherCreateDTOToModel(in, time.Now())
	if err := h.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Teacher with this ID already exists")
		}
		return helper.JsonServerError(c, err)
	}

	return helper.JsonCreated(c, "Teacher registered successfully", h.resolve(m))
}

// -----------------------------------------
// List (GET /api/teachers)
// -----------------------------------------
func (h *TeacherHandler) List(c *fiber.Ctx) error {
	var list []model.Teacher
	if err := h.DB.Order("teacher_created_at DESC").Find(&list).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	courses, err := courseModel.MapByIDs(h.DB, dto.CourseIDs(list))
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	resp := dto.ToTeacherResponses(list, courses)
	return helper.JsonCount(c, resp, len(resp))
}

// -----------------------------------------
// GetByID (GET /api/teachers/:id)
// -----------------------------------------
func (h *TeacherHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	var m model.Teacher
	if err := h.DB.First(&m, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonData(c, h.resolve(m))
}

// -----------------------------------------
// Update (PUT /api/teachers/:id)
// -----------------------------------------
func (h *TeacherHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	var in dto.TeacherUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.Teacher
	if err := h.DB.First(&m, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonServerError(c, err)
	}

	if in.TeacherID != nil {
		code := dto.NormalizeTeacherCode(*in.TeacherID)
		if !model.TeacherCodePattern.MatchString(code) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Teacher ID must contain only uppercase letters, numbers, hyphens and underscores")
		}
		if code != m.TeacherCode {
			var n int64
			if err := h.DB.Model(&model.Teacher{}).
				Where("teacher_code = ? AND teacher_id <> ?", code, id).
				Count(&n).Error; err != nil {
				return helper.JsonServerError(c, err)
			}
			if n > 0 {
				return helper.JsonError(c, fiber.StatusBadRequest, "Teacher with this ID already exists")
			}
		}
	}

	if in.AssignedCourses != nil {
		if err := h.checkAssignedCourses(*in.AssignedCourses); err != nil {
			return respondCourseCheck(c, err)
		}
	}

	dto.ApplyTeacherUpdate(&m, in)

	if err := h.DB.Save(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Teacher with this ID already exists")
		}
		return helper.JsonServerError(c, err)
	}

	return helper.JsonUpdated(c, "Teacher updated successfully", h.resolve(m))
}

// -----------------------------------------
// Delete (DELETE /api/teachers/:id)
// -----------------------------------------
func (h *TeacherHandler) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	res := h.DB.Delete(&model.Teacher{}, "teacher_id = ?", id)
	if res.Error != nil {
		return helper.JsonServerError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	return helper.JsonDeleted(c, "Teacher deleted successfully")
}

// errCourseMissing flags a well-formed ref pointing at no course.
var errCourseMissing = errors.New("assigned course not found")

func (h *TeacherHandler) checkAssignedCourses(ids []uuid.UUID) error {
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		ok, err := courseModel.Exists(h.DB, id)
		if err != nil {
			return err
		}
		if !ok {
			return errCourseMissing
		}
	}
	return nil
}

func respondCourseCheck(c *fiber.Ctx, err error) error {
	if errors.Is(err, errCourseMissing) {
		return helper.JsonError(c, fiber.StatusNotFound, "One or more assigned courses not found")
	}
	return helper.JsonServerError(c, err)
}

// resolve fetches the assigned-course join blocks for a single teacher. A
// lookup failure degrades to an empty list rather than failing the response.
func (h *TeacherHandler) resolve(m model.Teacher) dto.TeacherResponse {
	courses, err := courseModel.MapByIDs(h.DB, dto.CourseIDs([]model.Teacher{m}))
	if err != nil {
		log.Printf("[ERROR] course lookup failed for teacher %s: %v", m.TeacherCode, err)
		courses = nil
	}
	return dto.ToTeacherResponse(m, courses)
}
