package model

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TeacherCodePattern constrains the human-readable staff code.
var TeacherCodePattern = regexp.MustCompile(`^[A-Z0-9\-_]+$`)

type Teacher struct {
	TeacherID             uuid.UUID                       `gorm:"column:teacher_id;type:uuid;primaryKey" json:"teacher_id"`
	TeacherCode           string                          `gorm:"column:teacher_code;type:varchar(20);uniqueIndex:uniq_teacher_code;not null" json:"teacher_code"`
	TeacherName           string                          `gorm:"column:teacher_name;type:varchar(100);not null" json:"teacher_name"`
	TeacherQualification  string                          `gorm:"column:teacher_qualification;type:varchar(200)" json:"teacher_qualification"`
	TeacherSpecialization string                          `gorm:"column:teacher_specialization;type:varchar(100)" json:"teacher_specialization"`
	TeacherCourseIDs      datatypes.JSONSlice[uuid.UUID]  `gorm:"column:teacher_course_ids" json:"teacher_course_ids"`
	TeacherJoiningDate    time.Time                       `gorm:"column:teacher_joining_date;not null" json:"teacher_joining_date"`
	TeacherCreatedAt      time.Time                       `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt      time.Time                       `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
}

func (Teacher) TableName() string {
	return "teachers"
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) error {
	if t.TeacherID == uuid.Nil {
		t.TeacherID = uuid.New()
	}
	if t.TeacherJoiningDate.IsZero() {
		t.TeacherJoiningDate = time.Now()
	}
	return nil
}

func (t *Teacher) BeforeUpdate(tx *gorm.DB) error {
	t.TeacherUpdatedAt = time.Now()
	return nil
}

// MapByIDs fetches teachers keyed by id for read-side join resolution.
func MapByIDs(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]Teacher, error) {
	out := make(map[uuid.UUID]Teacher, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []Teacher
	if err := db.Where("teacher_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.TeacherID] = r
	}
	return out, nil
}

func Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var n int64
	if err := db.Model(&Teacher{}).Where("teacher_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
