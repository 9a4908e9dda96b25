package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/features/finance/budget/dto"
	"academy_backend/internals/features/finance/budget/model"
	"academy_backend/internals/features/finance/budget/service"
	feeModel "academy_backend/internals/features/finance/fees/model"
	salaryModel "academy_backend/internals/features/finance/salaries/model"
	helper "academy_backend/internals/helpers"
)

type BudgetHandler struct {
	DB   *gorm.DB
	Sync *service.BudgetSyncService
}

func NewBudgetHandler(db *gorm.DB) *BudgetHandler {
	return &BudgetHandler{
		DB:   db,
		Sync: &service.BudgetSyncService{DB: db},
	}
}

// -----------------------------------------
// Overview (GET /api/budget/overview?startDate=&endDate=&months=6)
// Merges the fee ledger, the salary ledger, and manual records into a
// month-by-month picture plus an all-time rollup.
// -----------------------------------------
func (h *BudgetHandler) Overview(c *fiber.Ctx) error {
	months, _ := strconv.Atoi(c.Query("months", "6"))
	if months < 1 {
		months = 6
	}
	startDate := parseDateQuery(c.Query("startDate"))
	endDate := parseDateQuery(c.Query("endDate"))

	now := time.Now()
	start, end := service.Window(startDate, endDate, months, now)

	// Fee collections count as income on their effective date.
	var fees []feeModel.FeeRecord
	if err := h.DB.Where("fee_amount_paid > 0").Find(&fees).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	feeEvents := make([]service.MoneyEvent, 0, len(fees))
	var feeIncomeAllTime float64
	for _, f := range fees {
		feeEvents = append(feeEvents, service.MoneyEvent{
			Amount: f.FeeAmountPaid,
			Date:   service.EffectiveDate(f.FeePaymentDate, f.FeeCreatedAt),
		})
		feeIncomeAllTime += f.FeeAmountPaid
	}
	feeByMonth := service.GroupByMonth(feeEvents, start, end)

	// Salary payments count as expenses likewise.
	var salaries []salaryModel.SalaryRecord
	if err := h.DB.Where("salary_amount_paid > 0").Find(&salaries).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	salaryEvents := make([]service.MoneyEvent, 0, len(salaries))
	var salaryExpenseAllTime float64
	for _, s := range salaries {
		salaryEvents = append(salaryEvents, service.MoneyEvent{
			Amount: s.SalaryAmountPaid,
			Date:   service.EffectiveDate(s.SalaryPaymentDate, s.SalaryCreatedAt),
		})
		salaryExpenseAllTime += s.SalaryAmountPaid
	}
	salaryByMonth := service.GroupByMonth(salaryEvents, start, end)

	// Manual records only; synced rows would double-count their sources.
	var manual []model.BudgetRecord
	if err := h.DB.Where("budget_source_type = ?", model.SourceTypeManual).Find(&manual).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	var manualIncomeEvents, manualExpenseEvents []service.MoneyEvent
	var manualIncomeAllTime, manualExpenseAllTime float64
	for _, r := range manual {
		e := service.MoneyEvent{Amount: r.BudgetAmount, Date: r.BudgetDate}
		if r.BudgetCategory == model.BudgetCategoryIncome {
			manualIncomeEvents = append(manualIncomeEvents, e)
			manualIncomeAllTime += r.BudgetAmount
		} else {
			manualExpenseEvents = append(manualExpenseEvents, e)
			manualExpenseAllTime += r.BudgetAmount
		}
	}
	manualIncomeByMonth := service.GroupByMonth(manualIncomeEvents, start, end)
	manualExpenseByMonth := service.GroupByMonth(manualExpenseEvents, start, end)

	var salaryWindowTotal float64
	var salaryWindowCount int
	for _, t := range salaryByMonth {
		salaryWindowTotal += t.Total
		salaryWindowCount += t.Count
	}

	return helper.JsonData(c, fiber.Map{
		"summary": service.BuildSummary(feeIncomeAllTime, manualIncomeAllTime, salaryExpenseAllTime, manualExpenseAllTime),
		"monthlyData": service.BuildMonthlySeries(months, now,
			feeByMonth, salaryByMonth, manualIncomeByMonth, manualExpenseByMonth),
		"expenseBreakdown": service.BuildExpenseBreakdown(manual, start, end, salaryWindowTotal, salaryWindowCount),
		"period": fiber.Map{
			"months":    months,
			"startDate": start,
			"endDate":   end,
		},
	})
}

// -----------------------------------------
// Records (GET /api/budget/records)
// -----------------------------------------
func (h *BudgetHandler) Records(c *fiber.Ctx) error {
	p := helper.ParsePaging(c, 20)

	category := strings.TrimSpace(c.Query("category"))
	budgetType := strings.TrimSpace(c.Query("type"))
	month := strings.TrimSpace(c.Query("month"))
	yearStr := strings.TrimSpace(c.Query("year"))

	filtered := func() *gorm.DB {
		q := h.DB.Model(&model.BudgetRecord{})
		if category != "" {
			q = q.Where("budget_category = ?", category)
		}
		if budgetType != "" {
			q = q.Where("budget_type = ?", budgetType)
		}
		if month != "" && yearStr != "" {
			year, err := strconv.Atoi(yearStr)
			if err == nil {
				q = q.Where("budget_month = ? AND budget_year = ?", month, year)
			}
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	var page []model.BudgetRecord
	if err := filtered().Order("budget_date DESC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&page).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	return helper.JsonList(c, dto.ToBudgetResponses(page), helper.BuildPagination(total, p), nil)
}

// -----------------------------------------
// Create (POST /api/budget/records)
// Manual records only; the calendar bucket is stamped from the date.
// -----------------------------------------
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	var in dto.BudgetCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !model.ValidBudgetType(strings.TrimSpace(in.Type)) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Type must be either Salary, Rent, Utilities, Marketing, Supplies, Equipment, Maintenance, or Other")
	}
	if !model.ValidBudgetCategory(strings.ToLower(strings.TrimSpace(in.Category))) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Category must be either income or expense")
	}

	m := dto.BudgetCreateDTOToModel(in, time.Now())
	m.StampPeriod()

	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	return helper.JsonCreated(c, "Budget record created successfully", dto.ToBudgetResponse(m))
}

// -----------------------------------------
// Update (PUT /api/budget/records/:id)
// System-generated records are owned by the sync and stay read-only.
// -----------------------------------------
func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid budget record ID")
	}
	var in dto.BudgetUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if in.Type != nil && !model.ValidBudgetType(strings.TrimSpace(*in.Type)) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Type must be either Salary, Rent, Utilities, Marketing, Supplies, Equipment, Maintenance, or Other")
	}
	if in.Category != nil && !model.ValidBudgetCategory(strings.ToLower(strings.TrimSpace(*in.Category))) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Category must be either income or expense")
	}

	var m model.BudgetRecord
	if err := h.DB.First(&m, "budget_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Budget record not found")
		}
		return helper.JsonServerError(c, err)
	}

	if m.BudgetIsSystemGenerated {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot edit system-generated budget records")
	}

	dto.ApplyBudgetUpdate(&m, in)
	m.StampPeriod()

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	return helper.JsonUpdated(c, "Budget record updated successfully", dto.ToBudgetResponse(m))
}

// -----------------------------------------
// Delete (DELETE /api/budget/records/:id)
// -----------------------------------------
func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid budget record ID")
	}
	var m model.BudgetRecord
	if err := h.DB.First(&m, "budget_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Budget record not found")
		}
		return helper.JsonServerError(c, err)
	}

	if m.BudgetIsSystemGenerated {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot delete system-generated budget records")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	return helper.JsonDeleted(c, "Budget record deleted successfully")
}

// -----------------------------------------
// SyncRecords (POST /api/budget/sync)
// -----------------------------------------
func (h *BudgetHandler) SyncRecords(c *fiber.Ctx) error {
	synced, err := h.Sync.Sync()
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonOK(c,
		fmt.Sprintf("Successfully synced %d budget records", synced),
		fiber.Map{"syncedRecords": synced})
}

// parseDateQuery accepts date-only or RFC3339 timestamps.
func parseDateQuery(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}
