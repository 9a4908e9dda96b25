package controller

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	courseModel "academy_backend/internals/features/academics/courses/model"
	studentModel "academy_backend/internals/features/academics/students/model"
	"academy_backend/internals/features/finance/fees/model"
)

func setupFeeAPI(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&courseModel.Course{},
		&studentModel.Student{},
		&model.FeeRecord{},
	))

	h := NewFeeHandler(db)
	app := fiber.New()
	app.Post("/api/fees/:id/payment", h.AddPayment)
	return app, db
}

func postPayment(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func seedFeeRecord(t *testing.T, db *gorm.DB, total, paid float64) model.FeeRecord {
	t.Helper()
	course := courseModel.Course{
		CourseName:        "Quran Recitation",
		CourseDescription: "Full recitation track",
		CoursePrice:       total,
		CourseDuration:    "12 months",
	}
	require.NoError(t, db.Create(&course).Error)

	student := studentModel.Student{
		StudentCode:        "STU300",
		StudentName:        "Usman Tariq",
		StudentFatherName:  "Tariq Mahmood",
		StudentCourseID:    course.CourseID,
		StudentJoiningDate: time.Now().AddDate(0, -3, 0),
	}
	require.NoError(t, db.Create(&student).Error)

	fee := model.FeeRecord{
		FeeStudentCode: student.StudentCode,
		FeeStudentName: student.StudentName,
		FeeStudentID:   student.StudentID,
		FeeCourseID:    course.CourseID,
		FeeCourseName:  course.CourseName,
		FeeTotalFee:    total,
		FeeAmountPaid:  paid,
		FeeDueDate:     time.Now().AddDate(0, 1, 0),
	}
	fee.RecomputeStatus(time.Now())
	require.NoError(t, db.Create(&fee).Error)
	return fee
}

func TestAddPaymentRejectsOverpayment(t *testing.T) {
	app, db := setupFeeAPI(t)
	fee := seedFeeRecord(t, db, 5000, 4000)

	status, out := postPayment(t, app,
		fmt.Sprintf("/api/fees/%s/payment", fee.FeeID),
		`{"amount": 1500, "paymentMethod": "Cash"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Payment amount cannot exceed remaining balance of $1000", out["message"])

	// The record stays untouched.
	var stored model.FeeRecord
	require.NoError(t, db.First(&stored, "fee_id = ?", fee.FeeID).Error)
	assert.Equal(t, 4000.0, stored.FeeAmountPaid)
	assert.Equal(t, model.PaymentStatusPartial, stored.FeePaymentStatus)
	assert.Empty(t, stored.FeeInstallments)
}

func TestAddPaymentSettlesRemainingBalance(t *testing.T) {
	app, db := setupFeeAPI(t)
	fee := seedFeeRecord(t, db, 5000, 4000)

	status, out := postPayment(t, app,
		fmt.Sprintf("/api/fees/%s/payment", fee.FeeID),
		`{"amount": 1000, "paymentMethod": "Bank Transfer", "transactionId": "TXN-88"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Payment added successfully", out["message"])

	var stored model.FeeRecord
	require.NoError(t, db.First(&stored, "fee_id = ?", fee.FeeID).Error)
	assert.Equal(t, 5000.0, stored.FeeAmountPaid)
	assert.Equal(t, model.PaymentStatusPaid, stored.FeePaymentStatus)
	require.NotNil(t, stored.FeePaymentDate)
	require.Len(t, stored.FeeInstallments, 1)
	assert.Equal(t, 1000.0, stored.FeeInstallments[0].Amount)
	assert.Equal(t, model.PaymentMethodBankTransfer, stored.FeeInstallments[0].PaymentMethod)
	assert.Equal(t, "TXN-88", stored.FeeInstallments[0].TransactionID)
}
