package model

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS — course status & certificate lifecycle
// =========================================================

type CourseStatus string

const (
	CourseStatusActive    CourseStatus = "active"
	CourseStatusCompleted CourseStatus = "completed"
	CourseStatusDropped   CourseStatus = "dropped"
)

func ValidCourseStatus(s string) bool {
	switch CourseStatus(s) {
	case CourseStatusActive, CourseStatusCompleted, CourseStatusDropped:
		return true
	}
	return false
}

type CertificateStatus string

const (
	CertificateStatusNotRequested CertificateStatus = "not_requested"
	CertificateStatusPending      CertificateStatus = "pending"
	CertificateStatusUnderReview  CertificateStatus = "under_review"
	CertificateStatusCertified    CertificateStatus = "certified"
	CertificateStatusRejected     CertificateStatus = "rejected"
)

func ValidCertificateStatus(s string) bool {
	switch CertificateStatus(s) {
	case CertificateStatusNotRequested, CertificateStatusPending,
		CertificateStatusUnderReview, CertificateStatusCertified,
		CertificateStatusRejected:
		return true
	}
	return false
}

// StudentCodePattern: the human-readable code, stored uppercased.
var StudentCodePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// =========================================================
// MODEL
// =========================================================

type Student struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`

	// Human-readable code (e.g. STU001), distinct from the PK
	StudentCode string `gorm:"column:student_code;type:varchar(20);not null;uniqueIndex:uniq_student_code" json:"student_code"`

	StudentName       string `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentFatherName string `gorm:"column:student_father_name;type:varchar(100);not null" json:"student_father_name"`

	// FK → courses(course_id); existence checked at write time
	StudentCourseID uuid.UUID `gorm:"column:student_course_id;type:uuid;not null;index" json:"student_course_id"`

	StudentJoiningDate  time.Time    `gorm:"column:student_joining_date;not null" json:"student_joining_date"`
	StudentCourseStatus CourseStatus `gorm:"column:student_course_status;type:varchar(20);not null;default:'active';index:ix_student_course_status" json:"student_course_status"`

	// Certificate lifecycle
	StudentCertificateStatus      CertificateStatus `gorm:"column:student_certificate_status;type:varchar(20);not null;default:'not_requested';index:ix_student_certificate_status" json:"student_certificate_status"`
	StudentCertificateRequestDate *time.Time        `gorm:"column:student_certificate_request_date" json:"student_certificate_request_date,omitempty"`
	StudentCompletionDate         *time.Time        `gorm:"column:student_completion_date" json:"student_completion_date,omitempty"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;not null;index:ix_student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;not null" json:"student_updated_at"`
}

func (Student) TableName() string {
	return "students"
}

// =========================================================
// HOOKS — id + explicit timestamps
// =========================================================

func (m *Student) BeforeCreate(tx *gorm.DB) (err error) {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StudentUpdatedAt = time.Now()
	return nil
}

// =========================================================
// LOOKUPS — read-side join resolution
// =========================================================

// MapByIDs fetches students keyed by id.
func MapByIDs(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]Student, error) {
	out := make(map[uuid.UUID]Student, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []Student
	if err := db.Where("student_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.StudentID] = r
	}
	return out, nil
}

// FindByCode resolves a student by the human-readable code.
func FindByCode(db *gorm.DB, code string) (Student, error) {
	var m Student
	err := db.First(&m, "student_code = ?", code).Error
	return m, err
}
