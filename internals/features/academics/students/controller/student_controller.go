package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "academy_backend/internals/features/academics/courses/model"
	"academy_backend/internals/features/academics/students/dto"
	"academy_backend/internals/features/academics/students/model"
	"academy_backend/internals/features/academics/students/service"
	helper "academy_backend/internals/helpers"
)

type StudentHandler struct {
	DB            *gorm.DB
	Certification *service.CertificationService
}

func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{
		DB:            db,
		Certification: &service.CertificationService{DB: db},
	}
}

// -----------------------------------------
// Create (POST /api/students)
// -----------------------------------------
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	code := dto.NormalizeStudentCode(in.StudentID)
	if !model.StudentCodePattern.MatchString(code) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID must contain only uppercase letters and numbers")
	}
	if in.CourseStatus != nil && !model.ValidCourseStatus(strings.ToLower(*in.CourseStatus)) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status must be either active, completed, or dropped")
	}

	// Referenced course must exist
	ok, err := courseModel.Exists(h.DB, in.Course)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	// Duplicate code (conflict) — unique index backstops concurrent creates
	var n int64
	if err := h.DB.Model(&model.Student{}).Where("student_code = ?", code).Count(&n).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student with this ID already exists")
	}

	// Duplicate (name, fatherName) pair
	if err := h.DB.Model(&model.Student{}).
		Where("student_name = ? AND student_father_name = ?", strings.TrimSpace(in.Name), strings.TrimSpace(in.FatherName)).
		Count(&n).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student with this name and father name already exists")
	}

	m := dto.StudentCreateDTOToModel(in, time.Now())
	if err := h.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student with this ID already exists")
		}
		return helper.JsonServerError(c, err)
	}

	return helper.JsonCreated(c, "Student registered successfully", h.resolve(c, m))
}

// -----------------------------------------
// List (GET /api/students)
// -----------------------------------------
func (h *StudentHandler) List(c *fiber.Ctx) error {
	var list []model.Student
	if err := h.DB.Order("student_created_at DESC").Find(&list).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	courses, err := courseModel.MapByIDs(h.DB, dto.CourseIDs(list))
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	resp := dto.ToStudentResponses(list, courses)
	return helper.JsonCount(c, resp, len(resp))
}

// -----------------------------------------
// GetByID (GET /api/students/:id)
// -----------------------------------------
func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonData(c, h.resolve(c, m))
}

// -----------------------------------------
// Update (PUT /api/students/:id)
// A transition of courseStatus into "completed" promotes the student to the
// certified ledger; that side effect never fails this update.
// -----------------------------------------
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if in.CourseStatus != nil && !model.ValidCourseStatus(strings.ToLower(strings.TrimSpace(*in.CourseStatus))) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status must be either active, completed, or dropped")
	}

	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonServerError(c, err)
	}

	previousStatus := strings.ToLower(string(m.StudentCourseStatus))

	if in.StudentID != nil {
		code := dto.NormalizeStudentCode(*in.StudentID)
		if !model.StudentCodePattern.MatchString(code) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student ID must contain only uppercase letters and numbers")
		}
		if code != m.StudentCode {
			var n int64
			if err := h.DB.Model(&model.Student{}).
				Where("student_code = ? AND student_id <> ?", code, id).
				Count(&n).Error; err != nil {
				return helper.JsonServerError(c, err)
			}
			if n > 0 {
				return helper.JsonError(c, fiber.StatusBadRequest, "Student with this ID already exists")
			}
		}
	}

	if in.Course != nil {
		ok, err := courseModel.Exists(h.DB, *in.Course)
		if err != nil {
			return helper.JsonServerError(c, err)
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
	}

	dto.ApplyStudentUpdate(&m, in)

	newStatus := strings.ToLower(string(m.StudentCourseStatus))
	completedNow := newStatus == string(model.CourseStatusCompleted) && previousStatus != string(model.CourseStatusCompleted)
	if completedNow && m.StudentCompletionDate == nil {
		now := time.Now()
		m.StudentCompletionDate = &now
	}

	if err := h.DB.Save(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student with this ID already exists")
		}
		return helper.JsonServerError(c, err)
	}

	if completedNow {
		h.Certification.PromoteIfAbsent(m)
	}

	return helper.JsonUpdated(c, "Student updated successfully", h.resolve(c, m))
}

// -----------------------------------------
// Delete (DELETE /api/students/:id)
// -----------------------------------------
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	res := h.DB.Delete(&model.Student{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.JsonServerError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonDeleted(c, "Student deleted successfully")
}

// -----------------------------------------
// ByCourse (GET /api/students/course/:courseId)
// -----------------------------------------
func (h *StudentHandler) ByCourse(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	var list []model.Student
	if err := h.DB.Where("student_course_id = ?", courseID).
		Order("student_created_at DESC").
		Find(&list).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	courses, err := courseModel.MapByIDs(h.DB, dto.CourseIDs(list))
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	resp := dto.ToStudentResponses(list, courses)
	return helper.JsonCount(c, resp, len(resp))
}

// resolve fetches the shallow course join for a single student. A lookup
// failure degrades to a nil course rather than failing the whole response.
func (h *StudentHandler) resolve(c *fiber.Ctx, m model.Student) dto.StudentResponse {
	courses, err := courseModel.MapByIDs(h.DB, []uuid.UUID{m.StudentCourseID})
	if err != nil {
		log.Printf("[ERROR] course lookup failed for student %s: %v", m.StudentCode, err)
		courses = nil
	}
	return dto.ToStudentResponse(m, courses)
}
