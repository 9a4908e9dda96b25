package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeStatusLifecycle(t *testing.T) {
	now := time.Now()
	m := FeeRecord{FeeTotalFee: 10000, FeeDiscount: 1000}

	m.RecomputeStatus(now)
	assert.Equal(t, PaymentStatusUnpaid, m.FeePaymentStatus)
	assert.Nil(t, m.FeePaymentDate)

	m.FeeAmountPaid = 4500
	m.RecomputeStatus(now)
	assert.Equal(t, PaymentStatusPartial, m.FeePaymentStatus)
	assert.Nil(t, m.FeePaymentDate)

	m.FeeAmountPaid = 9000
	m.RecomputeStatus(now)
	assert.Equal(t, PaymentStatusPaid, m.FeePaymentStatus)
	require.NotNil(t, m.FeePaymentDate)
	assert.Equal(t, now, *m.FeePaymentDate)
	assert.Equal(t, 0.0, m.Remaining())
}

func TestRecomputeStatusKeepsFirstPaymentDate(t *testing.T) {
	first := time.Now().Add(-24 * time.Hour)
	m := FeeRecord{FeeTotalFee: 500, FeeAmountPaid: 500, FeePaymentDate: &first}

	m.RecomputeStatus(time.Now())
	assert.Equal(t, PaymentStatusPaid, m.FeePaymentStatus)
	assert.Equal(t, first, *m.FeePaymentDate)
}

func TestRecomputeStatusClearsDateOnUnpaid(t *testing.T) {
	stamped := time.Now()
	m := FeeRecord{FeeTotalFee: 500, FeeAmountPaid: 0, FeePaymentDate: &stamped}

	m.RecomputeStatus(time.Now())
	assert.Equal(t, PaymentStatusUnpaid, m.FeePaymentStatus)
	assert.Nil(t, m.FeePaymentDate)
}

func TestPaymentPercentage(t *testing.T) {
	m := FeeRecord{FeeTotalFee: 1000, FeeDiscount: 100, FeeAmountPaid: 450}
	assert.Equal(t, 50, m.PaymentPercentage())

	m.FeeAmountPaid = 299
	assert.Equal(t, 33, m.PaymentPercentage())

	free := FeeRecord{FeeTotalFee: 100, FeeDiscount: 100, FeeAmountPaid: 0}
	assert.Equal(t, 0, free.PaymentPercentage())
}

func TestRemainingFloorsAtZero(t *testing.T) {
	m := FeeRecord{FeeTotalFee: 100, FeeDiscount: 50, FeeAmountPaid: 80}
	assert.Equal(t, 0.0, m.Remaining())
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod("Cash"))
	assert.True(t, ValidPaymentMethod("Bank Transfer"))
	assert.False(t, ValidPaymentMethod("cash"))
	assert.False(t, ValidPaymentMethod("Crypto"))
}
