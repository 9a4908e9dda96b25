package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "academy_backend/internals/features/academics/courses/model"
	studentModel "academy_backend/internals/features/academics/students/model"
	"academy_backend/internals/features/finance/fees/dto"
	"academy_backend/internals/features/finance/fees/model"
	"academy_backend/internals/features/finance/fees/service"
	helper "academy_backend/internals/helpers"
)

type FeeHandler struct {
	DB *gorm.DB
}

func NewFeeHandler(db *gorm.DB) *FeeHandler {
	return &FeeHandler{DB: db}
}

// sortColumns whitelists ?sort_by= values against real columns.
var sortColumns = map[string]string{
	"createdAt":     "fee_created_at",
	"dueDate":       "fee_due_date",
	"totalFee":      "fee_total_fee",
	"amountPaid":    "fee_amount_paid",
	"paymentStatus": "fee_payment_status",
	"studentName":   "fee_student_name",
}

// -----------------------------------------
// Test (GET /api/fees/test)
// -----------------------------------------
func (h *FeeHandler) Test(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"message":   "Fee API is working!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// -----------------------------------------
// Create (POST /api/fees)
// One record per (student, course) pair.
// -----------------------------------------
func (h *FeeHandler) Create(c *fiber.Ctx) error {
	var in dto.FeeCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	code := strings.ToUpper(strings.TrimSpace(in.StudentID))
	student, err := studentModel.FindByCode(h.DB, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonServerError(c, err)
	}

	var course courseModel.Course
	if err := h.DB.First(&course, "course_id = ?", in.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonServerError(c, err)
	}

	var n int64
	if err := h.DB.Model(&model.FeeRecord{}).
		Where("fee_student_id = ? AND fee_course_id = ?", student.StudentID, course.CourseID).
		Count(&n).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fee record already exists for this student and course")
	}

	m := dto.FeeCreateDTOToModel(in, student, course)
	if m.FeeDiscount > m.FeeTotalFee {
		return helper.JsonError(c, fiber.StatusBadRequest, "Discount cannot exceed total fee")
	}
	if m.FeeAmountPaid > m.EffectiveTotal() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Amount paid cannot exceed total fee minus discount")
	}
	m.RecomputeStatus(time.Now())

	if err := h.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Fee record already exists for this student and course")
		}
		return helper.JsonServerError(c, err)
	}

	return helper.JsonCreated(c, "Fee record created successfully", h.resolve(m))
}

// -----------------------------------------
// List (GET /api/fees)
// Filters + sort + pagination, with a rollup block over the full filtered set.
// -----------------------------------------
func (h *FeeHandler) List(c *fiber.Ctx) error {
	p := helper.ParsePaging(c, 50)

	var courseID *uuid.UUID
	if course := strings.TrimSpace(c.Query("course")); course != "" {
		id, err := uuid.Parse(course)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
		}
		courseID = &id
	}
	status := strings.TrimSpace(c.Query("status"))
	studentID := strings.TrimSpace(c.Query("studentId"))

	// Fresh query per finisher so limit/offset never leak between calls.
	filtered := func() *gorm.DB {
		q := h.DB.Model(&model.FeeRecord{})
		if status != "" {
			q = q.Where("fee_payment_status = ?", status)
		}
		if courseID != nil {
			q = q.Where("fee_course_id = ?", *courseID)
		}
		if studentID != "" {
			q = q.Where("LOWER(fee_student_code) LIKE ?", "%"+strings.ToLower(studentID)+"%")
		}
		return q
	}

	sortCol, ok := sortColumns[strings.TrimSpace(c.Query("sort_by", "createdAt"))]
	if !ok {
		sortCol = "fee_created_at"
	}
	order := "DESC"
	if strings.EqualFold(c.Query("sort_order", "desc"), "asc") {
		order = "ASC"
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	var page []model.FeeRecord
	if err := filtered().Order(sortCol + " " + order).
		Offset(p.Offset()).Limit(p.Limit).
		Find(&page).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	// Rollup covers every matching record, not just the page.
	var matching []model.FeeRecord
	if err := filtered().Find(&matching).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	summary := service.SummarizeFees(matching)

	students, courses, err := h.lookups(page)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonList(c, dto.ToFeeResponses(page, students, courses), helper.BuildPagination(total, p), summary)
}

// -----------------------------------------
// GetByID (GET /api/fees/:id)
// -----------------------------------------
func (h *FeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee record not found")
	}
	var m model.FeeRecord
	if err := h.DB.First(&m, "fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee record not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonData(c, h.resolve(m))
}

// -----------------------------------------
// Update (PUT /api/fees/:id)
// Amounts are re-validated against each other after the partial apply.
// -----------------------------------------
func (h *FeeHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee record not found")
	}
	var in dto.FeeUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.FeeRecord
	if err := h.DB.First(&m, "fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee record not found")
		}
		return helper.JsonServerError(c, err)
	}

	dto.ApplyFeeUpdate(&m, in)

	if m.FeeDiscount > m.FeeTotalFee {
		return helper.JsonError(c, fiber.StatusBadRequest, "Discount cannot exceed total fee")
	}
	if m.FeeAmountPaid > m.EffectiveTotal() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Amount paid cannot exceed total fee minus discount")
	}
	m.RecomputeStatus(time.Now())

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	return helper.JsonUpdated(c, "Fee record updated successfully", h.resolve(m))
}

// -----------------------------------------
// AddPayment (POST /api/fees/:id/payment)
// Appends an installment and rolls the paid total forward.
// -----------------------------------------
func (h *FeeHandler) AddPayment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee record not found")
	}
	var in dto.PaymentDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if in.Amount == nil || *in.Amount <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payment amount must be greater than zero")
	}

	method := model.PaymentMethodCash
	if s := strings.TrimSpace(in.PaymentMethod); s != "" {
		if !model.ValidPaymentMethod(s) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payment method must be either Cash, Card, Bank Transfer, Online, or Cheque")
		}
		method = model.PaymentMethod(s)
	}

	var m model.FeeRecord
	if err := h.DB.First(&m, "fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee record not found")
		}
		return helper.JsonServerError(c, err)
	}

	remaining := m.EffectiveTotal() - m.FeeAmountPaid
	if *in.Amount > remaining {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Payment amount cannot exceed remaining balance of $%g", remaining))
	}

	now := time.Now()
	m.FeeInstallments = append(m.FeeInstallments, model.Installment{
		Amount:        *in.Amount,
		PaymentDate:   now,
		PaymentMethod: method,
		TransactionID: strings.TrimSpace(in.TransactionID),
		Remarks:       strings.TrimSpace(in.Remarks),
	})
	m.FeeAmountPaid += *in.Amount
	m.RecomputeStatus(now)

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	return helper.JsonUpdated(c, "Payment added successfully", h.resolve(m))
}

// -----------------------------------------
// Delete (DELETE /api/fees/:id)
// -----------------------------------------
func (h *FeeHandler) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee record not found")
	}
	res := h.DB.Delete(&model.FeeRecord{}, "fee_id = ?", id)
	if res.Error != nil {
		return helper.JsonServerError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee record not found")
	}
	return helper.JsonDeleted(c, "Fee record deleted successfully")
}

// -----------------------------------------
// ByStudent (GET /api/fees/student/:studentId)
// Keyed on the human-readable student code.
// -----------------------------------------
func (h *FeeHandler) ByStudent(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("studentId")))
	var list []model.FeeRecord
	if err := h.DB.Where("fee_student_code = ?", code).
		Order("fee_created_at DESC").
		Find(&list).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	students, courses, err := h.lookups(list)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	resp := dto.ToFeeResponses(list, students, courses)
	return helper.JsonCount(c, resp, len(resp))
}

// -----------------------------------------
// Summary (GET /api/fees/summary)
// All-time totals plus a trailing-12-month installment rollup.
// -----------------------------------------
func (h *FeeHandler) Summary(c *fiber.Ctx) error {
	var list []model.FeeRecord
	if err := h.DB.Find(&list).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	cutoff := time.Now().AddDate(0, -12, 0)
	return helper.JsonData(c, fiber.Map{
		"summary":     service.SummarizeFees(list),
		"monthlyData": service.MonthlyCollections(list, cutoff),
	})
}

// lookups fetches the student and course join maps for a record batch.
func (h *FeeHandler) lookups(list []model.FeeRecord) (map[uuid.UUID]studentModel.Student, map[uuid.UUID]courseModel.Course, error) {
	students, err := studentModel.MapByIDs(h.DB, dto.StudentIDs(list))
	if err != nil {
		return nil, nil, err
	}
	courses, err := courseModel.MapByIDs(h.DB, dto.CourseIDs(list))
	if err != nil {
		return nil, nil, err
	}
	return students, courses, nil
}

// resolve builds the joined response for a single record. Lookup failures
// degrade to nil join blocks rather than failing the response.
func (h *FeeHandler) resolve(m model.FeeRecord) dto.FeeResponse {
	students, courses, err := h.lookups([]model.FeeRecord{m})
	if err != nil {
		log.Printf("[ERROR] fee join lookup failed for %s: %v", m.FeeID, err)
		students, courses = nil, nil
	}
	return dto.ToFeeResponse(m, students, courses)
}
