package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedAmounts(t *testing.T) {
	m := SalaryRecord{SalaryBaseSalary: 5000, SalaryBonus: 500, SalaryDeductions: 200, SalaryAmountPaid: 2650}

	assert.Equal(t, 5300.0, m.NetPayable())
	assert.Equal(t, 2650.0, m.Remaining())
	assert.Equal(t, 50, m.PaymentPercentage())
	assert.Equal(t, PaymentStatusPartial, m.PaymentStatus())
}

func TestPaymentStatusBounds(t *testing.T) {
	unpaid := SalaryRecord{SalaryBaseSalary: 1000}
	assert.Equal(t, PaymentStatusUnpaid, unpaid.PaymentStatus())

	paid := SalaryRecord{SalaryBaseSalary: 1000, SalaryAmountPaid: 1000}
	assert.Equal(t, PaymentStatusPaid, paid.PaymentStatus())
	assert.Equal(t, 0.0, paid.Remaining())
}

func TestZeroNetPayable(t *testing.T) {
	m := SalaryRecord{SalaryBaseSalary: 0, SalaryAmountPaid: 0}
	assert.Equal(t, 0, m.PaymentPercentage())
	assert.Equal(t, PaymentStatusUnpaid, m.PaymentStatus())
}

func TestValidMonth(t *testing.T) {
	assert.True(t, ValidMonth("January"))
	assert.True(t, ValidMonth("December"))
	assert.False(t, ValidMonth("january"))
	assert.False(t, ValidMonth("Jan"))
}
