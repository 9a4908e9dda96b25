package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy_backend/internals/features/finance/budget/model"
)

func TestWindowExplicitRange(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	gotStart, gotEnd := Window(&start, &end, 6, time.Now())
	assert.Equal(t, start, gotStart)
	assert.Equal(t, end, gotEnd)
}

func TestWindowTrailingMonths(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	start, end := Window(nil, nil, 3, now)
	assert.Equal(t, time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, now, end)

	// Default six-month lookback opens at the first of the sixth-back month.
	start, end = Window(nil, nil, 6, now)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, now, end)
}

func TestEffectiveDate(t *testing.T) {
	created := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	paid := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, paid, EffectiveDate(&paid, created))
	assert.Equal(t, created, EffectiveDate(nil, created))
}

func TestGroupByMonth(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	events := []MoneyEvent{
		{Amount: 100, Date: time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)},
		{Amount: 50, Date: time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)},
		{Amount: 75, Date: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)}, // before window
	}

	grouped := GroupByMonth(events, start, time.Time{})
	require.Len(t, grouped, 1)
	feb := grouped[MonthKey{Year: 2026, Month: time.February}]
	assert.Equal(t, 150.0, feb.Total)
	assert.Equal(t, 2, feb.Count)
}

func TestBuildMonthlySeriesEmptyStore(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	series := BuildMonthlySeries(3, now, nil, nil, nil, nil)
	require.Len(t, series, 3)
	assert.Equal(t, "June", series[0].Month)
	assert.Equal(t, "July", series[1].Month)
	assert.Equal(t, "August", series[2].Month)
	for _, m := range series {
		assert.Zero(t, m.Income)
		assert.Zero(t, m.Expenses)
		assert.Zero(t, m.Profit)
	}
}

func TestBuildMonthlySeriesMergesSources(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	aug := MonthKey{Year: 2026, Month: time.August}

	series := BuildMonthlySeries(2, now,
		map[MonthKey]MonthTotal{aug: {Total: 1000}},
		map[MonthKey]MonthTotal{aug: {Total: 400}},
		map[MonthKey]MonthTotal{aug: {Total: 200}},
		map[MonthKey]MonthTotal{aug: {Total: 100}},
	)
	require.Len(t, series, 2)
	last := series[1]
	assert.Equal(t, 1200.0, last.Income)
	assert.Equal(t, 500.0, last.Expenses)
	assert.Equal(t, 700.0, last.Profit)
	assert.Equal(t, 1000.0, last.FeeRevenue)
	assert.Equal(t, 400.0, last.SalaryExpense)
}

func TestBuildSummary(t *testing.T) {
	s := BuildSummary(8000, 2000, 3000, 1000)
	assert.Equal(t, 10000.0, s.TotalIncome)
	assert.Equal(t, 4000.0, s.TotalExpenses)
	assert.Equal(t, 6000.0, s.NetProfit)
	assert.Equal(t, "60.00", s.ProfitMargin)

	empty := BuildSummary(0, 0, 0, 0)
	assert.Equal(t, "0", empty.ProfitMargin)
}

func TestBuildExpenseBreakdown(t *testing.T) {
	date := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	manual := []model.BudgetRecord{
		{BudgetType: model.BudgetTypeRent, BudgetCategory: model.BudgetCategoryExpense, BudgetAmount: 2000, BudgetDate: date},
		{BudgetType: model.BudgetTypeUtilities, BudgetCategory: model.BudgetCategoryExpense, BudgetAmount: 300, BudgetDate: date},
		{BudgetType: model.BudgetTypeUtilities, BudgetCategory: model.BudgetCategoryExpense, BudgetAmount: 200, BudgetDate: date},
		{BudgetType: model.BudgetTypeOther, BudgetCategory: model.BudgetCategoryIncome, BudgetAmount: 9999, BudgetDate: date},
	}
	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	out := BuildExpenseBreakdown(manual, start, time.Time{}, 5000, 2)
	require.Len(t, out, 3)
	assert.Equal(t, "Salary", out[0].Type)
	assert.Equal(t, 5000.0, out[0].TotalAmount)
	assert.Equal(t, "Rent", out[1].Type)
	assert.Equal(t, "Utilities", out[2].Type)
	assert.Equal(t, 500.0, out[2].TotalAmount)
	assert.Equal(t, 2, out[2].Count)
}

func TestBuildExpenseBreakdownNoSalary(t *testing.T) {
	out := BuildExpenseBreakdown(nil, time.Time{}, time.Time{}, 0, 0)
	assert.Empty(t, out)
}
