package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// MODEL
// =========================================================

type Course struct {
	// PK
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey" json:"course_id"`

	// Name is unique across active and inactive courses
	CourseName        string  `gorm:"column:course_name;type:varchar(100);not null;uniqueIndex:uniq_course_name" json:"course_name"`
	CourseDescription string  `gorm:"column:course_description;type:varchar(500);not null" json:"course_description"`
	CoursePrice       float64 `gorm:"column:course_price;not null;check:course_price>=0" json:"course_price"`
	CourseDuration    string  `gorm:"column:course_duration;type:varchar(50);not null" json:"course_duration"`

	CourseIncludes datatypes.JSONSlice[string] `gorm:"column:course_includes" json:"course_includes"`

	// URL on the image CDN; upload handling lives outside this service
	CourseImage string `gorm:"column:course_image;type:text" json:"course_image"`

	CourseIsActive bool `gorm:"column:course_is_active;not null;default:true;index:ix_course_is_active" json:"course_is_active"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;not null;index:ix_course_created_at" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;not null" json:"course_updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

// =========================================================
// HOOKS — id + explicit timestamps
// =========================================================

func (m *Course) BeforeCreate(tx *gorm.DB) (err error) {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	now := time.Now()
	if m.CourseCreatedAt.IsZero() {
		m.CourseCreatedAt = now
	}
	m.CourseUpdatedAt = now
	return nil
}

func (m *Course) BeforeUpdate(tx *gorm.DB) (err error) {
	m.CourseUpdatedAt = time.Now()
	return nil
}

// =========================================================
// READ-SIDE LOOKUPS
// =========================================================

// MapByIDs resolves a set of course ids into a lookup map. Callers use this
// for shallow joins instead of pulling join logic into the write paths.
func MapByIDs(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]Course, error) {
	out := make(map[uuid.UUID]Course, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var list []Course
	if err := db.Where("course_id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	for _, course := range list {
		out[course.CourseID] = course
	}
	return out, nil
}

// Exists reports whether a course row is present.
func Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var n int64
	if err := db.Model(&Course{}).Where("course_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
