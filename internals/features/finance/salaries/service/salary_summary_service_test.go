package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"academy_backend/internals/features/finance/salaries/model"
)

func TestSummarizeSalaries(t *testing.T) {
	list := []model.SalaryRecord{
		{SalaryBaseSalary: 4000, SalaryAmountPaid: 4000},
		{SalaryBaseSalary: 4000, SalaryBonus: 1000, SalaryAmountPaid: 2500},
		{SalaryBaseSalary: 3000, SalaryDeductions: 500},
	}

	s := SummarizeSalaries(list)
	assert.Equal(t, 11500.0, s.TotalPayable)
	assert.Equal(t, 6500.0, s.TotalPaid)
	assert.Equal(t, 5000.0, s.TotalRemaining)
	assert.Equal(t, 3, s.TotalRecords)
	assert.Equal(t, 1, s.PaidCount)
	assert.Equal(t, 1, s.PartialCount)
	assert.Equal(t, 1, s.UnpaidCount)
	assert.Equal(t, 57, s.PaymentPercentage)
}

func TestSummarizeSalariesEmpty(t *testing.T) {
	s := SummarizeSalaries(nil)
	assert.Equal(t, 0, s.PaymentPercentage)
	assert.Equal(t, 0, s.TotalRecords)
}

func TestFilterByStatus(t *testing.T) {
	list := []model.SalaryRecord{
		{SalaryBaseSalary: 1000, SalaryAmountPaid: 1000},
		{SalaryBaseSalary: 1000, SalaryAmountPaid: 100},
		{SalaryBaseSalary: 1000},
	}

	assert.Len(t, FilterByStatus(list, "Paid"), 1)
	assert.Len(t, FilterByStatus(list, "Partial"), 1)
	assert.Len(t, FilterByStatus(list, "Unpaid"), 1)
	assert.Empty(t, FilterByStatus(list, "Overdue"))
}
