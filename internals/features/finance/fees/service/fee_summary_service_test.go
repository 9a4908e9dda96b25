package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy_backend/internals/features/finance/fees/model"
)

func TestSummarizeFees(t *testing.T) {
	list := []model.FeeRecord{
		{FeeTotalFee: 1000, FeeDiscount: 100, FeeAmountPaid: 900, FeePaymentStatus: model.PaymentStatusPaid},
		{FeeTotalFee: 2000, FeeDiscount: 0, FeeAmountPaid: 500, FeePaymentStatus: model.PaymentStatusPartial},
		{FeeTotalFee: 3000, FeeDiscount: 0, FeeAmountPaid: 0, FeePaymentStatus: model.PaymentStatusUnpaid},
	}

	s := SummarizeFees(list)
	assert.Equal(t, 6000.0, s.TotalRevenue)
	assert.Equal(t, 1400.0, s.TotalCollected)
	assert.Equal(t, 100.0, s.TotalDiscount)
	assert.Equal(t, 4500.0, s.TotalPending)
	assert.Equal(t, 3, s.TotalRecords)
	assert.Equal(t, 1, s.PaidCount)
	assert.Equal(t, 1, s.PartialCount)
	assert.Equal(t, 1, s.UnpaidCount)
}

func TestSummarizeFeesEmpty(t *testing.T) {
	s := SummarizeFees(nil)
	assert.Equal(t, FeeSummary{}, s)
}

func TestMonthlyCollections(t *testing.T) {
	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
	old := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)

	list := []model.FeeRecord{
		{FeeInstallments: []model.Installment{
			{Amount: 100, PaymentDate: jan},
			{Amount: 50, PaymentDate: jan.AddDate(0, 0, 5)},
			{Amount: 25, PaymentDate: old},
		}},
		{FeeInstallments: []model.Installment{
			{Amount: 200, PaymentDate: feb},
		}},
	}

	out := MonthlyCollections(list, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, out, 2)
	assert.Equal(t, 2026, out[0].Year)
	assert.Equal(t, 1, out[0].Month)
	assert.Equal(t, 150.0, out[0].TotalCollected)
	assert.Equal(t, 2, out[0].PaymentCount)
	assert.Equal(t, 2, out[1].Month)
	assert.Equal(t, 200.0, out[1].TotalCollected)
}
