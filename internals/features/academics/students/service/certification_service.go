package service

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	certifiedModel "academy_backend/internals/features/academics/certified/model"
	"academy_backend/internals/features/academics/students/model"
)

// CertificationService consumes student status transitions and keeps the
// certified-students ledger in sync. It is deliberately best-effort: the
// student write is the unit of atomicity, so failures here are logged and
// swallowed, never surfaced to the caller.
type CertificationService struct {
	DB *gorm.DB
}

// PromoteIfAbsent upserts the certification row for a student, keyed by the
// human-readable code. Safe to call repeatedly; re-invocation after a race or
// partial failure is a no-op once the row exists.
func (s *CertificationService) PromoteIfAbsent(st model.Student) {
	var existing certifiedModel.CertifiedStudent
	err := s.DB.First(&existing, "certified_student_code = ?", st.StudentCode).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] certification lookup failed for %s: %v", st.StudentCode, err)
		return
	}

	endDate := time.Now()
	if st.StudentCompletionDate != nil {
		endDate = *st.StudentCompletionDate
	}

	row := certifiedModel.CertifiedStudent{
		CertifiedStudentCode:       st.StudentCode,
		CertifiedStudentName:       st.StudentName,
		CertifiedStudentFatherName: st.StudentFatherName,
		CertifiedStudentCourseID:   st.StudentCourseID,
		CertifiedStudentStartDate:  st.StudentJoiningDate,
		CertifiedStudentEndDate:    endDate,
	}
	if err := s.DB.Create(&row).Error; err != nil {
		// Duplicate means a concurrent writer won the race; anything else is
		// a real failure worth the log line.
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("[ERROR] certified student insert failed for %s: %v", st.StudentCode, err)
		}
	}
}
