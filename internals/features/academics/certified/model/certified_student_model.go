package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertifiedStudent is the certification ledger. Exactly one row per
// human-readable student code; writers must check existence before insert so
// the promotion side effect stays idempotent.
type CertifiedStudent struct {
	// PK
	CertifiedStudentID uuid.UUID `gorm:"column:certified_student_id;type:uuid;primaryKey" json:"certified_student_id"`

	// Human-readable student code, not the students PK
	CertifiedStudentCode string `gorm:"column:certified_student_code;type:varchar(20);not null;uniqueIndex:uniq_certified_student_code" json:"certified_student_code"`

	CertifiedStudentName       string `gorm:"column:certified_student_name;type:varchar(100);not null" json:"certified_student_name"`
	CertifiedStudentFatherName string `gorm:"column:certified_student_father_name;type:varchar(100);not null" json:"certified_student_father_name"`

	// FK → courses(course_id)
	CertifiedStudentCourseID uuid.UUID `gorm:"column:certified_student_course_id;type:uuid;not null;index" json:"certified_student_course_id"`

	CertifiedStudentStartDate time.Time `gorm:"column:certified_student_start_date;not null" json:"certified_student_start_date"`
	CertifiedStudentEndDate   time.Time `gorm:"column:certified_student_end_date;not null" json:"certified_student_end_date"`

	CertifiedStudentCreatedAt time.Time `gorm:"column:certified_student_created_at;not null;index:ix_certified_student_created_at" json:"certified_student_created_at"`
	CertifiedStudentUpdatedAt time.Time `gorm:"column:certified_student_updated_at;not null" json:"certified_student_updated_at"`
}

func (CertifiedStudent) TableName() string {
	return "certified_students"
}

func (m *CertifiedStudent) BeforeCreate(tx *gorm.DB) (err error) {
	if m.CertifiedStudentID == uuid.Nil {
		m.CertifiedStudentID = uuid.New()
	}
	now := time.Now()
	if m.CertifiedStudentCreatedAt.IsZero() {
		m.CertifiedStudentCreatedAt = now
	}
	m.CertifiedStudentUpdatedAt = now
	return nil
}

func (m *CertifiedStudent) BeforeUpdate(tx *gorm.DB) (err error) {
	m.CertifiedStudentUpdatedAt = time.Now()
	return nil
}
