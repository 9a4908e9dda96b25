package service

import (
	"math"

	"academy_backend/internals/features/finance/salaries/model"
)

// SalarySummary is the rollup block for list responses and the summary
// endpoint.
type SalarySummary struct {
	TotalPayable      float64 `json:"totalPayable"`
	TotalPaid         float64 `json:"totalPaid"`
	TotalRemaining    float64 `json:"totalRemaining"`
	TotalRecords      int     `json:"totalRecords"`
	PaidCount         int     `json:"paidCount"`
	PartialCount      int     `json:"partialCount"`
	UnpaidCount       int     `json:"unpaidCount"`
	PaymentPercentage int     `json:"paymentPercentage"`
}

// SummarizeSalaries folds the records into the rollup block. The overall
// percentage is paid over payable across all records, not an average of the
// per-record percentages.
func SummarizeSalaries(list []model.SalaryRecord) SalarySummary {
	var s SalarySummary
	s.TotalRecords = len(list)
	for _, r := range list {
		s.TotalPayable += r.NetPayable()
		s.TotalPaid += r.SalaryAmountPaid
		s.TotalRemaining += r.Remaining()
		switch r.PaymentStatus() {
		case model.PaymentStatusPaid:
			s.PaidCount++
		case model.PaymentStatusPartial:
			s.PartialCount++
		default:
			s.UnpaidCount++
		}
	}
	if s.TotalPayable > 0 {
		s.PaymentPercentage = int(math.Round(s.TotalPaid / s.TotalPayable * 100))
	}
	return s
}

// FilterByStatus keeps records whose derived status matches. Applied in
// memory because the status is never stored.
func FilterByStatus(list []model.SalaryRecord, status string) []model.SalaryRecord {
	out := make([]model.SalaryRecord, 0, len(list))
	for _, r := range list {
		if string(r.PaymentStatus()) == status {
			out = append(out, r)
		}
	}
	return out
}
