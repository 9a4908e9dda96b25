package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	certifiedModel "academy_backend/internals/features/academics/certified/model"
	"academy_backend/internals/features/academics/students/model"
)

func setupCertDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Student{},
		&certifiedModel.CertifiedStudent{},
	))
	return db
}

func TestPromoteIfAbsentCreatesLedgerRow(t *testing.T) {
	db := setupCertDB(t)
	svc := &CertificationService{DB: db}

	joined := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	completed := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	st := model.Student{
		StudentCode:           "STU100",
		StudentName:           "Hamza Yusuf",
		StudentFatherName:     "Yusuf Ali",
		StudentCourseID:       uuid.New(),
		StudentJoiningDate:    joined,
		StudentCourseStatus:   model.CourseStatusCompleted,
		StudentCompletionDate: &completed,
	}

	svc.PromoteIfAbsent(st)

	var row certifiedModel.CertifiedStudent
	require.NoError(t, db.First(&row, "certified_student_code = ?", "STU100").Error)
	assert.Equal(t, "Hamza Yusuf", row.CertifiedStudentName)
	assert.Equal(t, "Yusuf Ali", row.CertifiedStudentFatherName)
	assert.Equal(t, st.StudentCourseID, row.CertifiedStudentCourseID)
	assert.True(t, row.CertifiedStudentStartDate.Equal(joined))
	assert.True(t, row.CertifiedStudentEndDate.Equal(completed))
}

func TestPromoteIfAbsentIsIdempotent(t *testing.T) {
	db := setupCertDB(t)
	svc := &CertificationService{DB: db}

	st := model.Student{
		StudentCode:        "STU101",
		StudentName:        "Zainab Omar",
		StudentFatherName:  "Omar Farooq",
		StudentCourseID:    uuid.New(),
		StudentJoiningDate: time.Now().AddDate(0, -6, 0),
	}

	svc.PromoteIfAbsent(st)
	svc.PromoteIfAbsent(st)
	svc.PromoteIfAbsent(st)

	var n int64
	require.NoError(t, db.Model(&certifiedModel.CertifiedStudent{}).
		Where("certified_student_code = ?", "STU101").
		Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestPromoteIfAbsentDefaultsEndDate(t *testing.T) {
	db := setupCertDB(t)
	svc := &CertificationService{DB: db}

	st := model.Student{
		StudentCode:        "STU102",
		StudentName:        "Ibrahim Saad",
		StudentFatherName:  "Saad Iqbal",
		StudentCourseID:    uuid.New(),
		StudentJoiningDate: time.Now().AddDate(-1, 0, 0),
	}

	before := time.Now()
	svc.PromoteIfAbsent(st)

	var row certifiedModel.CertifiedStudent
	require.NoError(t, db.First(&row, "certified_student_code = ?", "STU102").Error)
	assert.False(t, row.CertifiedStudentEndDate.Before(before))
}
