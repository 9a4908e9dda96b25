package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS — type, category, source
// =========================================================

type BudgetType string

const (
	BudgetTypeSalary      BudgetType = "Salary"
	BudgetTypeRent        BudgetType = "Rent"
	BudgetTypeUtilities   BudgetType = "Utilities"
	BudgetTypeMarketing   BudgetType = "Marketing"
	BudgetTypeSupplies    BudgetType = "Supplies"
	BudgetTypeEquipment   BudgetType = "Equipment"
	BudgetTypeMaintenance BudgetType = "Maintenance"
	BudgetTypeOther       BudgetType = "Other"
)

func ValidBudgetType(s string) bool {
	switch BudgetType(s) {
	case BudgetTypeSalary, BudgetTypeRent, BudgetTypeUtilities, BudgetTypeMarketing,
		BudgetTypeSupplies, BudgetTypeEquipment, BudgetTypeMaintenance, BudgetTypeOther:
		return true
	}
	return false
}

type BudgetCategory string

const (
	BudgetCategoryIncome  BudgetCategory = "income"
	BudgetCategoryExpense BudgetCategory = "expense"
)

func ValidBudgetCategory(s string) bool {
	switch BudgetCategory(s) {
	case BudgetCategoryIncome, BudgetCategoryExpense:
		return true
	}
	return false
}

type SourceType string

const (
	SourceTypeManual        SourceType = "manual"
	SourceTypeFeeCollection SourceType = "fee_collection"
	SourceTypeSalaryPayment SourceType = "salary_payment"
)

// =========================================================
// MODEL
// =========================================================

type BudgetRecord struct {
	// PK
	BudgetID uuid.UUID `gorm:"column:budget_id;type:uuid;primaryKey" json:"budget_id"`

	BudgetType        BudgetType     `gorm:"column:budget_type;type:varchar(20);not null" json:"budget_type"`
	BudgetDescription string         `gorm:"column:budget_description;type:varchar(500);not null" json:"budget_description"`
	BudgetAmount      float64        `gorm:"column:budget_amount;not null;check:budget_amount >= 0" json:"budget_amount"`
	BudgetDate        time.Time      `gorm:"column:budget_date;not null;index:ix_budget_date" json:"budget_date"`
	BudgetCategory    BudgetCategory `gorm:"column:budget_category;type:varchar(10);not null;index:ix_budget_category" json:"budget_category"`

	// Calendar bucket, stamped from BudgetDate at write time
	BudgetMonth string `gorm:"column:budget_month;type:varchar(10);not null" json:"budget_month"`
	BudgetYear  int    `gorm:"column:budget_year;not null" json:"budget_year"`

	// Provenance. A synced record points back at its fee or salary source and
	// is locked against manual edits; at most one record per (source, id).
	BudgetSourceType        SourceType `gorm:"column:budget_source_type;type:varchar(20);not null;default:'manual';index:ix_budget_source,priority:1" json:"budget_source_type"`
	BudgetSourceID          *uuid.UUID `gorm:"column:budget_source_id;type:uuid;index:ix_budget_source,priority:2" json:"budget_source_id,omitempty"`
	BudgetIsSystemGenerated bool       `gorm:"column:budget_is_system_generated;not null;default:false" json:"budget_is_system_generated"`

	BudgetCreatedAt time.Time `gorm:"column:budget_created_at;not null" json:"budget_created_at"`
	BudgetUpdatedAt time.Time `gorm:"column:budget_updated_at;not null" json:"budget_updated_at"`
}

func (BudgetRecord) TableName() string {
	return "budget_records"
}

// =========================================================
// HOOKS
// =========================================================

func (m *BudgetRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if m.BudgetID == uuid.Nil {
		m.BudgetID = uuid.New()
	}
	now := time.Now()
	if m.BudgetCreatedAt.IsZero() {
		m.BudgetCreatedAt = now
	}
	m.BudgetUpdatedAt = now
	return nil
}

func (m *BudgetRecord) BeforeUpdate(tx *gorm.DB) (err error) {
	m.BudgetUpdatedAt = time.Now()
	return nil
}

// StampPeriod derives the calendar bucket from the record date.
func (m *BudgetRecord) StampPeriod() {
	m.BudgetMonth = m.BudgetDate.Month().String()
	m.BudgetYear = m.BudgetDate.Year()
}
