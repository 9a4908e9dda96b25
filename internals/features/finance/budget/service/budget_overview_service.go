package service

import (
	"fmt"
	"sort"
	"time"

	"academy_backend/internals/features/finance/budget/model"
)

// MoneyEvent is a dated amount from any ledger feeding the overview. The
// effective date of a payment is its payment date when recorded, otherwise
// the row's creation time.
type MoneyEvent struct {
	Amount float64
	Date   time.Time
}

func EffectiveDate(paymentDate *time.Time, createdAt time.Time) time.Time {
	if paymentDate != nil {
		return *paymentDate
	}
	return createdAt
}

// MonthKey buckets events by calendar month.
type MonthKey struct {
	Year  int
	Month time.Month
}

func KeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// MonthTotal is a per-bucket sum with the contributing event count.
type MonthTotal struct {
	Total float64
	Count int
}

// GroupByMonth folds events inside [start, end] into calendar buckets. A zero
// end means unbounded.
func GroupByMonth(events []MoneyEvent, start, end time.Time) map[MonthKey]MonthTotal {
	out := make(map[MonthKey]MonthTotal)
	for _, e := range events {
		if e.Date.Before(start) {
			continue
		}
		if !end.IsZero() && e.Date.After(end) {
			continue
		}
		k := KeyOf(e.Date)
		t := out[k]
		t.Total += e.Amount
		t.Count++
		out[k] = t
	}
	return out
}

// Window resolves the reporting range: an explicit [startDate, endDate] pair
// wins; otherwise the range runs from the first of the month N months back
// through now. Note the default range therefore spans N+1 calendar months
// including the current one.
func Window(startDate, endDate *time.Time, months int, now time.Time) (time.Time, time.Time) {
	if startDate != nil && endDate != nil {
		return *startDate, *endDate
	}
	if months < 1 {
		months = 1
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -months, 0)
	return first, now
}

// MonthlyBudget is one entry of the overview series.
type MonthlyBudget struct {
	Month          string  `json:"month"`
	Year           int     `json:"year"`
	Income         float64 `json:"income"`
	Expenses       float64 `json:"expenses"`
	Profit         float64 `json:"profit"`
	FeeRevenue     float64 `json:"feeRevenue"`
	SalaryExpense  float64 `json:"salaryExpense"`
	ManualIncome   float64 `json:"manualIncome"`
	ManualExpenses float64 `json:"manualExpenses"`
}

// BuildMonthlySeries walks the trailing months oldest to newest, merging fee
// revenue, salary expense, and manual records into one row per month. Months
// with no activity still appear, zeroed.
func BuildMonthlySeries(
	months int,
	now time.Time,
	feeRevenue map[MonthKey]MonthTotal,
	salaryExpense map[MonthKey]MonthTotal,
	manualIncome map[MonthKey]MonthTotal,
	manualExpenses map[MonthKey]MonthTotal,
) []MonthlyBudget {
	if months < 1 {
		months = 1
	}
	out := make([]MonthlyBudget, 0, months)
	for i := months - 1; i >= 0; i-- {
		anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		k := KeyOf(anchor)
		fee := feeRevenue[k].Total
		salary := salaryExpense[k].Total
		mIncome := manualIncome[k].Total
		mExpense := manualExpenses[k].Total
		income := fee + mIncome
		expenses := salary + mExpense
		out = append(out, MonthlyBudget{
			Month:          k.Month.String(),
			Year:           k.Year,
			Income:         income,
			Expenses:       expenses,
			Profit:         income - expenses,
			FeeRevenue:     fee,
			SalaryExpense:  salary,
			ManualIncome:   mIncome,
			ManualExpenses: mExpense,
		})
	}
	return out
}

// OverviewSummary is the all-time rollup, unaffected by the window.
type OverviewSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
	ProfitMargin  string  `json:"profitMargin"`
}

// BuildSummary totals income and expenses across all sources. The margin is
// formatted to two decimals, zero when there is no income.
func BuildSummary(feeIncome, manualIncome, salaryExpense, manualExpense float64) OverviewSummary {
	totalIncome := feeIncome + manualIncome
	totalExpenses := salaryExpense + manualExpense
	net := totalIncome - totalExpenses
	margin := "0"
	if totalIncome > 0 {
		margin = fmt.Sprintf("%.2f", net/totalIncome*100)
	}
	return OverviewSummary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetProfit:     net,
		ProfitMargin:  margin,
	}
}

// ExpenseBreakdownEntry is one expense type with its windowed total.
type ExpenseBreakdownEntry struct {
	Type        string  `json:"type"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int     `json:"count"`
}

// BuildExpenseBreakdown groups manual expense records in the window by type,
// largest first, and prepends a synthetic Salary entry for paid salaries so
// payroll shows up even though it lives in its own ledger.
func BuildExpenseBreakdown(manual []model.BudgetRecord, start, end time.Time, salaryTotal float64, salaryCount int) []ExpenseBreakdownEntry {
	grouped := make(map[string]*ExpenseBreakdownEntry)
	for _, r := range manual {
		if r.BudgetCategory != model.BudgetCategoryExpense {
			continue
		}
		if r.BudgetDate.Before(start) {
			continue
		}
		if !end.IsZero() && r.BudgetDate.After(end) {
			continue
		}
		g, ok := grouped[string(r.BudgetType)]
		if !ok {
			g = &ExpenseBreakdownEntry{Type: string(r.BudgetType)}
			grouped[string(r.BudgetType)] = g
		}
		g.TotalAmount += r.BudgetAmount
		g.Count++
	}
	out := make([]ExpenseBreakdownEntry, 0, len(grouped)+1)
	for _, g := range grouped {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalAmount > out[j].TotalAmount })
	if salaryTotal > 0 {
		out = append([]ExpenseBreakdownEntry{{
			Type:        "Salary",
			TotalAmount: salaryTotal,
			Count:       salaryCount,
		}}, out...)
	}
	return out
}
