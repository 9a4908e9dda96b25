package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS — payment status & method
// =========================================================

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusPartial PaymentStatus = "Partial"
	PaymentStatusUnpaid  PaymentStatus = "Unpaid"
)

func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentStatusPaid, PaymentStatusPartial, PaymentStatusUnpaid:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodCard         PaymentMethod = "Card"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodOnline       PaymentMethod = "Online"
	PaymentMethodCheque       PaymentMethod = "Cheque"
)

func ValidPaymentMethod(s string) bool {
	switch PaymentMethod(s) {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer,
		PaymentMethodOnline, PaymentMethodCheque:
		return true
	}
	return false
}

// Installment is one payment event, stored embedded on the record.
type Installment struct {
	Amount        float64       `json:"amount"`
	PaymentDate   time.Time     `json:"paymentDate"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TransactionID string        `json:"transactionId,omitempty"`
	Remarks       string        `json:"remarks,omitempty"`
}

// =========================================================
// MODEL
// =========================================================

type FeeRecord struct {
	// PK
	FeeID uuid.UUID `gorm:"column:fee_id;type:uuid;primaryKey" json:"fee_id"`

	// Denormalized student identity, kept alongside the hard ref
	FeeStudentCode string    `gorm:"column:fee_student_code;type:varchar(20);not null;index:ix_fee_student_code" json:"fee_student_code"`
	FeeStudentName string    `gorm:"column:fee_student_name;type:varchar(100);not null" json:"fee_student_name"`
	FeeStudentID   uuid.UUID `gorm:"column:fee_student_id;type:uuid;not null;uniqueIndex:uniq_fee_student_course" json:"fee_student_id"`

	// Course ref + denormalized name
	FeeCourseID   uuid.UUID `gorm:"column:fee_course_id;type:uuid;not null;uniqueIndex:uniq_fee_student_course" json:"fee_course_id"`
	FeeCourseName string    `gorm:"column:fee_course_name;type:varchar(100);not null" json:"fee_course_name"`

	FeeTotalFee   float64 `gorm:"column:fee_total_fee;not null;check:fee_total_fee >= 0" json:"fee_total_fee"`
	FeeAmountPaid float64 `gorm:"column:fee_amount_paid;not null;default:0;check:fee_amount_paid >= 0" json:"fee_amount_paid"`

	FeePaymentStatus PaymentStatus `gorm:"column:fee_payment_status;type:varchar(10);not null;default:'Unpaid';index:ix_fee_payment_status" json:"fee_payment_status"`
	FeePaymentDate   *time.Time    `gorm:"column:fee_payment_date" json:"fee_payment_date,omitempty"`
	FeeDueDate       time.Time     `gorm:"column:fee_due_date;not null" json:"fee_due_date"`

	FeeInstallments datatypes.JSONSlice[Installment] `gorm:"column:fee_installments" json:"fee_installments"`

	FeeDiscount       float64 `gorm:"column:fee_discount;not null;default:0;check:fee_discount >= 0" json:"fee_discount"`
	FeeDiscountReason string  `gorm:"column:fee_discount_reason;type:varchar(200)" json:"fee_discount_reason"`
	FeeRemarks        string  `gorm:"column:fee_remarks;type:varchar(500)" json:"fee_remarks"`

	FeeCreatedAt time.Time `gorm:"column:fee_created_at;not null;index:ix_fee_created_at" json:"fee_created_at"`
	FeeUpdatedAt time.Time `gorm:"column:fee_updated_at;not null" json:"fee_updated_at"`
}

func (FeeRecord) TableName() string {
	return "fee_records"
}

// =========================================================
// HOOKS
// =========================================================

func (m *FeeRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if m.FeeID == uuid.Nil {
		m.FeeID = uuid.New()
	}
	now := time.Now()
	if m.FeeCreatedAt.IsZero() {
		m.FeeCreatedAt = now
	}
	m.FeeUpdatedAt = now
	return nil
}

func (m *FeeRecord) BeforeUpdate(tx *gorm.DB) (err error) {
	m.FeeUpdatedAt = time.Now()
	return nil
}

// =========================================================
// DERIVED STATE
// =========================================================

// EffectiveTotal is the amount actually owed after discount.
func (m *FeeRecord) EffectiveTotal() float64 {
	return m.FeeTotalFee - m.FeeDiscount
}

// Remaining is the outstanding balance, floored at zero.
func (m *FeeRecord) Remaining() float64 {
	return math.Max(0, m.EffectiveTotal()-m.FeeAmountPaid)
}

// PaymentPercentage is the collected share of the effective total, rounded to
// the nearest whole percent. Zero when nothing is effectively owed.
func (m *FeeRecord) PaymentPercentage() int {
	effective := m.EffectiveTotal()
	if effective <= 0 {
		return 0
	}
	return int(math.Round(m.FeeAmountPaid / effective * 100))
}

// RecomputeStatus derives the payment status from the current amounts. Every
// write path calls this before persisting. Reaching Paid stamps the payment
// date once; dropping back to Unpaid clears it.
func (m *FeeRecord) RecomputeStatus(now time.Time) {
	effective := m.EffectiveTotal()
	switch {
	case m.FeeAmountPaid >= effective:
		m.FeePaymentStatus = PaymentStatusPaid
		if m.FeePaymentDate == nil {
			m.FeePaymentDate = &now
		}
	case m.FeeAmountPaid > 0:
		m.FeePaymentStatus = PaymentStatusPartial
	default:
		m.FeePaymentStatus = PaymentStatusUnpaid
		m.FeePaymentDate = nil
	}
}
