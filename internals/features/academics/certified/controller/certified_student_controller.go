package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academy_backend/internals/features/academics/certified/dto"
	"academy_backend/internals/features/academics/certified/model"
	courseModel "academy_backend/internals/features/academics/courses/model"
	helper "academy_backend/internals/helpers"
)

type CertifiedStudentHandler struct {
	DB *gorm.DB
}

func NewCertifiedStudentHandler(db *gorm.DB) *CertifiedStudentHandler {
	return &CertifiedStudentHandler{DB: db}
}

// -----------------------------------------
// Create (POST /api/certified-students)
// Manual entry path; the usual producer is the certification consumer on the
// student side.
// -----------------------------------------
func (h *CertifiedStudentHandler) Create(c *fiber.Ctx) error {
	var in dto.CertifiedStudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ok, err := courseModel.Exists(h.DB, in.Course)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	code := dto.NormalizeCode(in.StudentID)
	var n int64
	if err := h.DB.Model(&model.CertifiedStudent{}).Where("certified_student_code = ?", code).Count(&n).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Certified student with this ID already exists")
	}

	m := dto.CertifiedStudentCreateDTOToModel(in, time.Now())
	if err := h.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Certified student with this ID already exists")
		}
		return helper.JsonServerError(c, err)
	}

	return helper.JsonCreated(c, "Certified student added successfully", h.resolve(m))
}

// -----------------------------------------
// List (GET /api/certified-students)
// -----------------------------------------
func (h *CertifiedStudentHandler) List(c *fiber.Ctx) error {
	var list []model.CertifiedStudent
	if err := h.DB.Order("certified_student_created_at DESC").Find(&list).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	courses, err := courseModel.MapByIDs(h.DB, dto.CourseIDs(list))
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	resp := dto.ToCertifiedStudentResponses(list, courses)
	return helper.JsonCount(c, resp, len(resp))
}

// -----------------------------------------
// GetByID (GET /api/certified-students/:id)
// -----------------------------------------
func (h *CertifiedStudentHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Certified student not found")
	}
	var m model.CertifiedStudent
	if err := h.DB.First(&m, "certified_student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Certified student not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonData(c, h.resolve(m))
}

// -----------------------------------------
// ByStudentCode (GET /api/certified-students/student-id/:studentId)
// Lookup by the human-readable code printed on the certificate.
// -----------------------------------------
func (h *CertifiedStudentHandler) ByStudentCode(c *fiber.Ctx) error {
	code := dto.NormalizeCode(c.Params("studentId"))
	if code == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Certified student not found")
	}
	var m model.CertifiedStudent
	if err := h.DB.First(&m, "certified_student_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Certified student not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonData(c, h.resolve(m))
}

// -----------------------------------------
// Update (PUT /api/certified-students/:id)
// -----------------------------------------
func (h *CertifiedStudentHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Certified student not found")
	}
	var in dto.CertifiedStudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.CertifiedStudent
	if err := h.DB.First(&m, "certified_student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Certified student not found")
		}
		return helper.JsonServerError(c, err)
	}

	if in.StudentID != nil {
		code := dto.NormalizeCode(*in.StudentID)
		if code != m.CertifiedStudentCode {
			var n int64
			if err := h.DB.Model(&model.CertifiedStudent{}).
				Where("certified_student_code = ? AND certified_student_id <> ?", code, id).
				Count(&n).Error; err != nil {
				return helper.JsonServerError(c, err)
			}
			if n > 0 {
				return helper.JsonError(c, fiber.StatusBadRequest, "Certified student with this ID already exists")
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

	dto.ApplyCertifiedStudentUpdate(&m, in)

	if err := h.DB.Save(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Certified student with this ID already exists")
		}
		return helper.JsonServerError(c, err)
	}

	return helper.JsonUpdated(c, "Certified student updated successfully", h.resolve(m))
}

// -----------------------------------------
// Delete (DELETE /api/certified-students/:id)
// -----------------------------------------
func (h *CertifiedStudentHandler) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Certified student not found")
	}
	res := h.DB.Delete(&model.CertifiedStudent{}, "certified_student_id = ?", id)
	if res.Error != nil {
		return helper.JsonServerError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Certified student not found")
	}
	return helper.JsonDeleted(c, "Certified student deleted successfully")
}

// resolve fetches the course join for a single row. A lookup failure degrades
// to a nil course rather than failing the response.
func (h *CertifiedStudentHandler) resolve(m model.CertifiedStudent) dto.CertifiedStudentResponse {
	courses, err := courseModel.MapByIDs(h.DB, []uuid.UUID{m.CertifiedStudentCourseID})
	if err != nil {
		log.Printf("[ERROR] course lookup failed for certified student %s: %v", m.CertifiedStudentCode, err)
		courses = nil
	}
	return dto.ToCertifiedStudentResponse(m, courses)
}
