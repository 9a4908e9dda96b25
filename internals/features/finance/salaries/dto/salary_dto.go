package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	teacherModel "academy_backend/internals/features/academics/teachers/model"
	"academy_backend/internals/features/finance/salaries/model"
)

////////////////////////////////////////////////////////////////////////////////
// SALARIES — DTO
////////////////////////////////////////////////////////////////////////////////

// Create
type SalaryCreateDTO struct {
	TeacherID   uuid.UUID  `json:"teacherId" validate:"required"`
	Month       string     `json:"month" validate:"required"`
	Year        *int       `json:"year" validate:"required,min=2000,max=2100"`
	BaseSalary  *float64   `json:"baseSalary" validate:"required,min=0"`
	Bonus       *float64   `json:"bonus" validate:"omitempty,min=0"`
	Deductions  *float64   `json:"deductions" validate:"omitempty,min=0"`
	AmountPaid  *float64   `json:"amountPaid" validate:"omitempty,min=0"`
	PaymentDate *time.Time `json:"paymentDate"`
	Notes       string     `json:"notes" validate:"omitempty,max=500"`
}

// Update (partial). Teacher and period are fixed at creation.
type SalaryUpdateDTO struct {
	BaseSalary  *float64   `json:"baseSalary" validate:"omitempty,min=0"`
	Bonus       *float64   `json:"bonus" validate:"omitempty,min=0"`
	Deductions  *float64   `json:"deductions" validate:"omitempty,min=0"`
	AmountPaid  *float64   `json:"amountPaid" validate:"omitempty,min=0"`
	PaymentDate *time.Time `json:"paymentDate"`
	Notes       *string    `json:"notes" validate:"omitempty,max=500"`
}

// Teacher join block
type SalaryTeacher struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	JoiningDate    time.Time `json:"joiningDate"`
}

// Response. Derived amounts are computed here, never read from storage.
type SalaryResponse struct {
	ID                uuid.UUID      `json:"id"`
	TeacherID         uuid.UUID      `json:"teacherId"`
	TeacherName       string         `json:"teacherName"`
	Month             string         `json:"month"`
	Year              int            `json:"year"`
	BaseSalary        float64        `json:"baseSalary"`
	Bonus             float64        `json:"bonus"`
	Deductions        float64        `json:"deductions"`
	AmountPaid        float64        `json:"amountPaid"`
	PaymentStatus     string         `json:"paymentStatus"`
	PaymentDate       *time.Time     `json:"paymentDate"`
	Notes             string         `json:"notes,omitempty"`
	NetPayable        float64        `json:"netPayable"`
	RemainingAmount   float64        `json:"remainingAmount"`
	PaymentPercentage int            `json:"paymentPercentage"`
	Teacher           *SalaryTeacher `json:"teacher"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToSalaryResponse(m model.SalaryRecord, teachers map[uuid.UUID]teacherModel.Teacher) SalaryResponse {
	var teacher *SalaryTeacher
	if t, ok := teachers[m.SalaryTeacherID]; ok {
		teacher = &SalaryTeacher{
			ID:             t.TeacherID,
			Name:           t.TeacherName,
			Specialization: t.TeacherSpecialization,
			JoiningDate:    t.TeacherJoiningDate,
		}
	}
	return SalaryResponse{
		ID:                m.SalaryID,
		TeacherID:         m.SalaryTeacherID,
		TeacherName:       m.SalaryTeacherName,
		Month:             m.SalaryMonth,
		Year:              m.SalaryYear,
		BaseSalary:        m.SalaryBaseSalary,
		Bonus:             m.SalaryBonus,
		Deductions:        m.SalaryDeductions,
		AmountPaid:        m.SalaryAmountPaid,
		PaymentStatus:     string(m.PaymentStatus()),
		PaymentDate:       m.SalaryPaymentDate,
		Notes:             m.SalaryNotes,
		NetPayable:        m.NetPayable(),
		RemainingAmount:   m.Remaining(),
		PaymentPercentage: m.PaymentPercentage(),
		Teacher:           teacher,
		CreatedAt:         m.SalaryCreatedAt,
		UpdatedAt:         m.SalaryUpdatedAt,
	}
}

func ToSalaryResponses(list []model.SalaryRecord, teachers map[uuid.UUID]teacherModel.Teacher) []SalaryResponse {
	out := make([]SalaryResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToSalaryResponse(v, teachers))
	}
	return out
}

func SalaryCreateDTOToModel(d SalaryCreateDTO, teacher teacherModel.Teacher) model.SalaryRecord {
	bonus, deductions, paid := 0.0, 0.0, 0.0
	if d.Bonus != nil {
		bonus = *d.Bonus
	}
	if d.Deductions != nil {
		deductions = *d.Deductions
	}
	if d.AmountPaid != nil {
		paid = *d.AmountPaid
	}
	return model.SalaryRecord{
		SalaryTeacherID:   teacher.TeacherID,
		SalaryTeacherName: teacher.TeacherName,
		SalaryMonth:       d.Month,
		SalaryYear:        *d.Year,
		SalaryBaseSalary:  *d.BaseSalary,
		SalaryBonus:       bonus,
		SalaryDeductions:  deductions,
		SalaryAmountPaid:  paid,
		SalaryPaymentDate: d.PaymentDate,
		SalaryNotes:       strings.TrimSpace(d.Notes),
	}
}

// ApplySalaryUpdate mutates only the provided fields.
func ApplySalaryUpdate(m *model.SalaryRecord, d SalaryUpdateDTO) {
	if d.BaseSalary != nil {
		m.SalaryBaseSalary = *d.BaseSalary
	}
	if d.Bonus != nil {
		m.SalaryBonus = *d.Bonus
	}
	if d.Deductions != nil {
		m.SalaryDeductions = *d.Deductions
	}
	if d.AmountPaid != nil {
		m.SalaryAmountPaid = *d.AmountPaid
	}
	if d.PaymentDate != nil {
		m.SalaryPaymentDate = d.PaymentDate
	}
	if d.Notes != nil {
		m.SalaryNotes = strings.TrimSpace(*d.Notes)
	}
}

// TeacherIDs collects distinct teacher refs for a lookup fetch.
func TeacherIDs(list []model.SalaryRecord) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(list))
	out := make([]uuid.UUID, 0, len(list))
	for _, s := range list {
		if _, ok := seen[s.SalaryTeacherID]; ok {
			continue
		}
		seen[s.SalaryTeacherID] = struct{}{}
		out = append(out, s.SalaryTeacherID)
	}
	return out
}
