package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"academy_backend/internals/features/finance/budget/model"
	feeModel "academy_backend/internals/features/finance/fees/model"
	salaryModel "academy_backend/internals/features/finance/salaries/model"
)

// BudgetSyncService mirrors paid fees and salaries into the budget ledger as
// system-generated records. Each source row maps to at most one budget record,
// so re-running the sync only picks up what is new.
type BudgetSyncService struct {
	DB *gorm.DB
}

// Sync scans both payment ledgers and returns how many records were created.
// A row qualifies once money has moved and the payment date is known.
func (s *BudgetSyncService) Sync() (int, error) {
	synced := 0

	var fees []feeModel.FeeRecord
	if err := s.DB.
		Where("fee_amount_paid > 0 AND fee_payment_date IS NOT NULL").
		Find(&fees).Error; err != nil {
		return synced, err
	}
	for _, fee := range fees {
		created, err := s.createIfAbsent(model.BudgetRecord{
			BudgetType:              model.BudgetTypeOther,
			BudgetDescription:       fmt.Sprintf("Fee collection - %s", fee.FeeStudentName),
			BudgetAmount:            fee.FeeAmountPaid,
			BudgetDate:              *fee.FeePaymentDate,
			BudgetCategory:          model.BudgetCategoryIncome,
			BudgetSourceType:        model.SourceTypeFeeCollection,
			BudgetSourceID:          ptr(fee.FeeID),
			BudgetIsSystemGenerated: true,
		})
		if err != nil {
			return synced, err
		}
		if created {
			synced++
		}
	}

	var salaries []salaryModel.SalaryRecord
	if err := s.DB.
		Where("salary_amount_paid > 0 AND salary_payment_date IS NOT NULL").
		Find(&salaries).Error; err != nil {
		return synced, err
	}
	for _, salary := range salaries {
		created, err := s.createIfAbsent(model.BudgetRecord{
			BudgetType:              model.BudgetTypeSalary,
			BudgetDescription:       fmt.Sprintf("Salary payment - %s", salary.SalaryTeacherName),
			BudgetAmount:            salary.SalaryAmountPaid,
			BudgetDate:              *salary.SalaryPaymentDate,
			BudgetCategory:          model.BudgetCategoryExpense,
			BudgetSourceType:        model.SourceTypeSalaryPayment,
			BudgetSourceID:          ptr(salary.SalaryID),
			BudgetIsSystemGenerated: true,
		})
		if err != nil {
			return synced, err
		}
		if created {
			synced++
		}
	}

	return synced, nil
}

func (s *BudgetSyncService) createIfAbsent(rec model.BudgetRecord) (bool, error) {
	var n int64
	if err := s.DB.Model(&model.BudgetRecord{}).
		Where("budget_source_type = ? AND budget_source_id = ?", rec.BudgetSourceType, rec.BudgetSourceID).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	rec.StampPeriod()
	if err := s.DB.Create(&rec).Error; err != nil {
		return false, err
	}
	return true, nil
}

func ptr(id uuid.UUID) *uuid.UUID { return &id }
