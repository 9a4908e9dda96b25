package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModel "academy_backend/internals/features/academics/courses/model"
	"academy_backend/internals/features/academics/students/dto"
	"academy_backend/internals/features/academics/students/model"
	helper "academy_backend/internals/helpers"
)

// -----------------------------------------
// PendingCertificates (GET /api/students/pending-certificates)
// Students waiting on a certificate decision, oldest request first.
// -----------------------------------------
func (h *StudentHandler) PendingCertificates(c *fiber.Ctx) error {
	var list []model.Student
	if err := h.DB.Where("student_certificate_status IN ?", []string{
		string(model.CertificateStatusPending),
		string(model.CertificateStatusUnderReview),
	}).
		Order("student_certificate_request_date ASC").
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

// -----------------------------------------
// PendingCertificatesSummary (GET /api/students/pending-certificates/summary)
// -----------------------------------------
func (h *StudentHandler) PendingCertificatesSummary(c *fiber.Ctx) error {
	var summary dto.CertificateSummaryResponse
	counts := []struct {
		status model.CertificateStatus
		target *int64
	}{
		{model.CertificateStatusNotRequested, &summary.NotRequested},
		{model.CertificateStatusPending, &summary.Pending},
		{model.CertificateStatusUnderReview, &summary.UnderReview},
		{model.CertificateStatusCertified, &summary.Certified},
		{model.CertificateStatusRejected, &summary.Rejected},
	}
	for _, item := range counts {
		if err := h.DB.Model(&model.Student{}).
			Where("student_certificate_status = ?", item.status).
			Count(item.target).Error; err != nil {
			return helper.JsonServerError(c, err)
		}
	}
	return helper.JsonData(c, summary)
}

// -----------------------------------------
// UpdateCertificateStatus (PUT /api/students/pending-certificates/:id/status)
// Setting "certified" promotes the student to the certified ledger; that side
// effect never fails this update.
// -----------------------------------------
func (h *StudentHandler) UpdateCertificateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	var in dto.CertificateStatusUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	status := strings.ToLower(strings.TrimSpace(in.CertificateStatus))
	if !model.ValidCertificateStatus(status) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Certificate status must be one of not_requested, pending, under_review, certified, rejected")
	}

	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonServerError(c, err)
	}

	now := time.Now()
	m.StudentCertificateStatus = model.CertificateStatus(status)
	if status == string(model.CertificateStatusPending) && m.StudentCertificateRequestDate == nil {
		m.StudentCertificateRequestDate = &now
	}
	certifiedNow := status == string(model.CertificateStatusCertified)
	if certifiedNow && m.StudentCompletionDate == nil {
		m.StudentCompletionDate = &now
	}

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	if certifiedNow {
		h.Certification.PromoteIfAbsent(m)
	}

	return helper.JsonUpdated(c, "Certificate status updated successfully", h.resolve(c, m))
}
