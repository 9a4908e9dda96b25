package service

import (
	"sort"
	"time"

	"academy_backend/internals/features/finance/fees/model"
)

// FeeSummary is the rollup block attached to list responses and the summary
// endpoint. Totals are summed over the matching records, not the current page.
type FeeSummary struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalCollected float64 `json:"totalCollected"`
	TotalDiscount  float64 `json:"totalDiscount"`
	TotalPending   float64 `json:"totalPending"`
	TotalRecords   int     `json:"totalRecords"`
	PaidCount      int     `json:"paidCount"`
	PartialCount   int     `json:"partialCount"`
	UnpaidCount    int     `json:"unpaidCount"`
}

// MonthlyCollection is one month of installment activity.
type MonthlyCollection struct {
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	TotalCollected float64 `json:"totalCollected"`
	PaymentCount   int     `json:"paymentCount"`
}

// SummarizeFees folds the records into the rollup block. Pending keeps the
// raw sum (a record overpaid past its effective total subtracts), matching
// how the totals are reported elsewhere.
func SummarizeFees(list []model.FeeRecord) FeeSummary {
	var s FeeSummary
	s.TotalRecords = len(list)
	for _, f := range list {
		s.TotalRevenue += f.FeeTotalFee
		s.TotalCollected += f.FeeAmountPaid
		s.TotalDiscount += f.FeeDiscount
		s.TotalPending += f.FeeTotalFee - f.FeeDiscount - f.FeeAmountPaid
		switch f.FeePaymentStatus {
		case model.PaymentStatusPaid:
			s.PaidCount++
		case model.PaymentStatusPartial:
			s.PartialCount++
		default:
			s.UnpaidCount++
		}
	}
	return s
}

// MonthlyCollections groups installment payments since the cutoff by calendar
// month, oldest first.
func MonthlyCollections(list []model.FeeRecord, since time.Time) []MonthlyCollection {
	type key struct {
		year  int
		month int
	}
	grouped := make(map[key]*MonthlyCollection)
	for _, f := range list {
		for _, in := range f.FeeInstallments {
			if in.PaymentDate.Before(since) {
				continue
			}
			k := key{year: in.PaymentDate.Year(), month: int(in.PaymentDate.Month())}
			g, ok := grouped[k]
			if !ok {
				g = &MonthlyCollection{Year: k.year, Month: k.month}
				grouped[k] = g
			}
			g.TotalCollected += in.Amount
			g.PaymentCount++
		}
	}
	out := make([]MonthlyCollection, 0, len(grouped))
	for _, g := range grouped {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}
