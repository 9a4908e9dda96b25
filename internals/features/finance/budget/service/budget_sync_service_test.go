package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"academy_backend/internals/features/finance/budget/model"
	feeModel "academy_backend/internals/features/finance/fees/model"
	salaryModel "academy_backend/internals/features/finance/salaries/model"
)

func setupSyncDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&feeModel.FeeRecord{},
		&salaryModel.SalaryRecord{},
		&model.BudgetRecord{},
	))
	return db
}

func TestSyncCreatesRecordsOnce(t *testing.T) {
	db := setupSyncDB(t)
	svc := &BudgetSyncService{DB: db}

	paidAt := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	fee := feeModel.FeeRecord{
		FeeStudentCode: "STU001",
		FeeStudentName: "Ahmed Khan",
		FeeStudentID:   uuid.New(),
		FeeCourseID:    uuid.New(),
		FeeCourseName:  "Quran Recitation",
		FeeTotalFee:    5000,
		FeeAmountPaid:  5000,
		FeeDueDate:     paidAt,
		FeePaymentDate: &paidAt,
	}
	require.NoError(t, db.Create(&fee).Error)

	salary := salaryModel.SalaryRecord{
		SalaryTeacherID:   uuid.New(),
		SalaryTeacherName: "Ustadh Bilal",
		SalaryMonth:       "July",
		SalaryYear:        2026,
		SalaryBaseSalary:  3000,
		SalaryAmountPaid:  3000,
		SalaryPaymentDate: &paidAt,
	}
	require.NoError(t, db.Create(&salary).Error)

	synced, err := svc.Sync()
	require.NoError(t, err)
	assert.Equal(t, 2, synced)

	var income model.BudgetRecord
	require.NoError(t, db.First(&income, "budget_source_type = ?", model.SourceTypeFeeCollection).Error)
	assert.Equal(t, "Fee collection - Ahmed Khan", income.BudgetDescription)
	assert.Equal(t, model.BudgetCategoryIncome, income.BudgetCategory)
	assert.Equal(t, model.BudgetTypeOther, income.BudgetType)
	assert.Equal(t, "July", income.BudgetMonth)
	assert.Equal(t, 2026, income.BudgetYear)
	assert.True(t, income.BudgetIsSystemGenerated)
	require.NotNil(t, income.BudgetSourceID)
	assert.Equal(t, fee.FeeID, *income.BudgetSourceID)

	var expense model.BudgetRecord
	require.NoError(t, db.First(&expense, "budget_source_type = ?", model.SourceTypeSalaryPayment).Error)
	assert.Equal(t, "Salary payment - Ustadh Bilal", expense.BudgetDescription)
	assert.Equal(t, model.BudgetCategoryExpense, expense.BudgetCategory)
	assert.Equal(t, model.BudgetTypeSalary, expense.BudgetType)

	// Re-running picks up nothing new.
	synced, err = svc.Sync()
	require.NoError(t, err)
	assert.Equal(t, 0, synced)

	var n int64
	require.NoError(t, db.Model(&model.BudgetRecord{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestSyncSkipsUndatedPayments(t *testing.T) {
	db := setupSyncDB(t)
	svc := &BudgetSyncService{DB: db}

	// Partial payment without a recorded payment date stays out of the ledger.
	fee := feeModel.FeeRecord{
		FeeStudentCode: "STU002",
		FeeStudentName: "Fatima Noor",
		FeeStudentID:   uuid.New(),
		FeeCourseID:    uuid.New(),
		FeeCourseName:  "Tajweed",
		FeeTotalFee:    4000,
		FeeAmountPaid:  1000,
		FeeDueDate:     time.Now(),
	}
	require.NoError(t, db.Create(&fee).Error)

	unpaid := salaryModel.SalaryRecord{
		SalaryTeacherID:   uuid.New(),
		SalaryTeacherName: "Ustadha Maryam",
		SalaryMonth:       "June",
		SalaryYear:        2026,
		SalaryBaseSalary:  2500,
	}
	require.NoError(t, db.Create(&unpaid).Error)

	synced, err := svc.Sync()
	require.NoError(t, err)
	assert.Equal(t, 0, synced)
}
