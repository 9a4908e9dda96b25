package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentStatus mirrors the fee-side values but is never stored here; it is
// derived from the amounts on every read.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusPartial PaymentStatus = "Partial"
	PaymentStatusUnpaid  PaymentStatus = "Unpaid"
)

// MonthNames in calendar order; payroll periods use English month names.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func ValidMonth(s string) bool {
	for _, m := range MonthNames {
		if m == s {
			return true
		}
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type SalaryRecord struct {
	// PK
	SalaryID uuid.UUID `gorm:"column:salary_id;type:uuid;primaryKey" json:"salary_id"`

	// One record per teacher per payroll period
	SalaryTeacherID   uuid.UUID `gorm:"column:salary_teacher_id;type:uuid;not null;uniqueIndex:uniq_salary_teacher_period" json:"salary_teacher_id"`
	SalaryTeacherName string    `gorm:"column:salary_teacher_name;type:varchar(100);not null" json:"salary_teacher_name"`
	SalaryMonth       string    `gorm:"column:salary_month;type:varchar(10);not null;uniqueIndex:uniq_salary_teacher_period" json:"salary_month"`
	SalaryYear        int       `gorm:"column:salary_year;not null;uniqueIndex:uniq_salary_teacher_period" json:"salary_year"`

	SalaryBaseSalary float64 `gorm:"column:salary_base_salary;not null;check:salary_base_salary >= 0" json:"salary_base_salary"`
	SalaryBonus      float64 `gorm:"column:salary_bonus;not null;default:0;check:salary_bonus >= 0" json:"salary_bonus"`
	SalaryDeductions float64 `gorm:"column:salary_deductions;not null;default:0;check:salary_deductions >= 0" json:"salary_deductions"`
	SalaryAmountPaid float64 `gorm:"column:salary_amount_paid;not null;default:0;check:salary_amount_paid >= 0" json:"salary_amount_paid"`

	SalaryPaymentDate *time.Time `gorm:"column:salary_payment_date" json:"salary_payment_date,omitempty"`
	SalaryNotes       string     `gorm:"column:salary_notes;type:varchar(500)" json:"salary_notes"`

	SalaryCreatedAt time.Time `gorm:"column:salary_created_at;not null;index:ix_salary_created_at" json:"salary_created_at"`
	SalaryUpdatedAt time.Time `gorm:"column:salary_updated_at;not null" json:"salary_updated_at"`
}

func (SalaryRecord) TableName() string {
	return "salary_records"
}

// =========================================================
// HOOKS
// =========================================================

func (m *SalaryRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if m.SalaryID == uuid.Nil {
		m.SalaryID = uuid.New()
	}
	now := time.Now()
	if m.SalaryCreatedAt.IsZero() {
		m.SalaryCreatedAt = now
	}
	m.SalaryUpdatedAt = now
	return nil
}

func (m *SalaryRecord) BeforeUpdate(tx *gorm.DB) (err error) {
	m.SalaryUpdatedAt = time.Now()
	return nil
}

// =========================================================
// DERIVED STATE — read-time, never persisted
// =========================================================

func (m *SalaryRecord) NetPayable() float64 {
	return m.SalaryBaseSalary + m.SalaryBonus - m.SalaryDeductions
}

func (m *SalaryRecord) Remaining() float64 {
	return math.Max(0, m.NetPayable()-m.SalaryAmountPaid)
}

// PaymentPercentage is the paid share of net payable, rounded to the nearest
// whole percent. Zero when nothing is payable.
func (m *SalaryRecord) PaymentPercentage() int {
	net := m.NetPayable()
	if net <= 0 {
		return 0
	}
	return int(math.Round(m.SalaryAmountPaid / net * 100))
}

func (m *SalaryRecord) PaymentStatus() PaymentStatus {
	switch pct := m.PaymentPercentage(); {
	case pct == 0:
		return PaymentStatusUnpaid
	case pct >= 100:
		return PaymentStatusPaid
	default:
		return PaymentStatusPartial
	}
}
