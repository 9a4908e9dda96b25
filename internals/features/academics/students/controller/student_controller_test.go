package controller

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	certifiedModel "academy_backend/internals/features/academics/certified/model"
	courseModel "academy_backend/internals/features/academics/courses/model"
	"academy_backend/internals/features/academics/students/model"
)

func setupStudentAPI(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&courseModel.Course{},
		&model.Student{},
		&certifiedModel.CertifiedStudent{},
	))

	h := NewStudentHandler(db)
	app := fiber.New()
	app.Post("/api/students", h.Create)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
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

func seedCourse(t *testing.T, db *gorm.DB) courseModel.Course {
	t.Helper()
	course := courseModel.Course{
		CourseName:        "Tajweed Basics",
		CourseDescription: "Rules of recitation",
		CoursePrice:       3000,
		CourseDuration:    "6 months",
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestCreateStudentRejectsDuplicateCode(t *testing.T) {
	app, db := setupStudentAPI(t)
	course := seedCourse(t, db)

	body := fmt.Sprintf(`{"studentId":"STU200","name":"Ali Raza","fatherName":"Raza Ahmed","course":%q}`, course.CourseID)
	status, _ := postJSON(t, app, "/api/students", body)
	require.Equal(t, fiber.StatusCreated, status)

	// Codes are normalized to uppercase, so a lowercase resubmission collides.
	body = fmt.Sprintf(`{"studentId":"stu200","name":"Bilal Asif","fatherName":"Asif Mehmood","course":%q}`, course.CourseID)
	status, out := postJSON(t, app, "/api/students", body)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Student with this ID already exists", out["message"])

	var n int64
	require.NoError(t, db.Model(&model.Student{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCreateStudentUnknownCourse(t *testing.T) {
	app, _ := setupStudentAPI(t)

	body := fmt.Sprintf(`{"studentId":"STU201","name":"Hassan Javed","fatherName":"Javed Iqbal","course":%q}`, uuid.New())
	status, out := postJSON(t, app, "/api/students", body)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Course not found", out["message"])
}
