package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"academy_backend/internals/features/academics/students/model"
)

func TestNormalizeStudentCode(t *testing.T) {
	assert.Equal(t, "STU001", NormalizeStudentCode("  stu001 "))
	assert.Equal(t, "STU001", NormalizeStudentCode("STU001"))
}

func TestCourseIDsDeduplicates(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	list := []model.Student{
		{StudentCourseID: a},
		{StudentCourseID: b},
		{StudentCourseID: a},
	}

	ids := CourseIDs(list)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
}
