package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	teacherModel "academy_backend/internals/features/academics/teachers/model"
	"academy_backend/internals/features/finance/salaries/dto"
	"academy_backend/internals/features/finance/salaries/model"
	"academy_backend/internals/features/finance/salaries/service"
	helper "academy_backend/internals/helpers"
)

type SalaryHandler struct {
	DB *gorm.DB
}

func NewSalaryHandler(db *gorm.DB) *SalaryHandler {
	return &SalaryHandler{DB: db}
}

// -----------------------------------------
// List (GET /api/salaries)
// The paymentStatus filter is derived state, so it is applied in memory after
// the storage-level filters; pagination then runs over the surviving rows.
// -----------------------------------------
func (h *SalaryHandler) List(c *fiber.Ctx) error {
	p := helper.ParsePaging(c, 10)

	q := h.DB.Model(&model.SalaryRecord{})
	if teacherID := strings.TrimSpace(c.Query("teacher_id")); teacherID != "" {
		id, err := uuid.Parse(teacherID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID format")
		}
		q = q.Where("salary_teacher_id = ?", id)
	}
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		q = q.Where("salary_month = ?", month)
	}
	if yearStr := strings.TrimSpace(c.Query("year")); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
		}
		q = q.Where("salary_year = ?", year)
	}

	var matching []model.SalaryRecord
	if err := q.Order("salary_created_at DESC").Find(&matching).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	if status := strings.TrimSpace(c.Query("paymentStatus")); status != "" {
		matching = service.FilterByStatus(matching, status)
	}

	total := int64(len(matching))
	start := p.Offset()
	if start > len(matching) {
		start = len(matching)
	}
	end := start + p.Limit
	if end > len(matching) {
		end = len(matching)
	}
	page := matching[start:end]

	teachers, err := teacherModel.MapByIDs(h.DB, dto.TeacherIDs(page))
	if err != nil {
		return helper.JsonServerError(c, err)
	}

	return helper.JsonList(c,
		dto.ToSalaryResponses(page, teachers),
		helper.BuildPagination(total, p),
		service.SummarizeSalaries(matching))
}

// -----------------------------------------
// Create (POST /api/salaries)
// One record per teacher per payroll period.
// -----------------------------------------
func (h *SalaryHandler) Create(c *fiber.Ctx) error {
	var in dto.SalaryCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !model.ValidMonth(in.Month) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Month must be a full English month name")
	}

	var teacher teacherModel.Teacher
	if err := h.DB.First(&teacher, "teacher_id = ?", in.TeacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonServerError(c, err)
	}

	var n int64
	if err := h.DB.Model(&model.SalaryRecord{}).
		Where("salary_teacher_id = ? AND salary_month = ? AND salary_year = ?", in.TeacherID, in.Month, *in.Year).
		Count(&n).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Salary record already exists for %s for %s %d", teacher.TeacherName, in.Month, *in.Year))
	}

	m := dto.SalaryCreateDTOToModel(in, teacher)
	if err := h.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Salary record already exists for this teacher, month, and year")
		}
		return helper.JsonServerError(c, err)
	}

	return helper.JsonCreated(c, "Salary record created successfully", h.resolve(m))
}

// -----------------------------------------
// GetByID (GET /api/salaries/:id)
// -----------------------------------------
func (h *SalaryHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Salary record not found")
	}
	var m model.SalaryRecord
	if err := h.DB.First(&m, "salary_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Salary record not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonData(c, h.resolve(m))
}

// -----------------------------------------
// Update (PUT /api/salaries/:id)
// -----------------------------------------
func (h *SalaryHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Salary record not found")
	}
	var in dto.SalaryUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.SalaryRecord
	if err := h.DB.First(&m, "salary_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Salary record not found")
		}
		return helper.JsonServerError(c, err)
	}

	dto.ApplySalaryUpdate(&m, in)

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	return helper.JsonUpdated(c, "Salary record updated successfully", h.resolve(m))
}

// -----------------------------------------
// Delete (DELETE /api/salaries/:id)
// -----------------------------------------
func (h *SalaryHandler) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Salary record not found")
	}
	res := h.DB.Delete(&model.SalaryRecord{}, "salary_id = ?", id)
	if res.Error != nil {
		return helper.JsonServerError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Salary record not found")
	}
	return helper.JsonDeleted(c, "Salary record deleted successfully")
}

// -----------------------------------------
// Summary (GET /api/salaries/summary?month=&year=)
// -----------------------------------------
func (h *SalaryHandler) Summary(c *fiber.Ctx) error {
	q := h.DB.Model(&model.SalaryRecord{})
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		q = q.Where("salary_month = ?", month)
	}
	if yearStr := strings.TrimSpace(c.Query("year")); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
		}
		q = q.Where("salary_year = ?", year)
	}

	var list []model.SalaryRecord
	if err := q.Find(&list).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonData(c, service.SummarizeSalaries(list))
}

// resolve builds the joined response for a single record. A lookup failure
// degrades to a nil teacher block rather than failing the response.
func (h *SalaryHandler) resolve(m model.SalaryRecord) dto.SalaryResponse {
	teachers, err := teacherModel.MapByIDs(h.DB, []uuid.UUID{m.SalaryTeacherID})
	if err != nil {
		log.Printf("[ERROR] teacher lookup failed for salary %s: %v", m.SalaryID, err)
		teachers = nil
	}
	return dto.ToSalaryResponse(m, teachers)
}
