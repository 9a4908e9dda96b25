package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	courseModel "academy_backend/internals/features/academics/courses/model"
	studentModel "academy_backend/internals/features/academics/students/model"
	"academy_backend/internals/features/finance/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEES — DTO
////////////////////////////////////////////////////////////////////////////////

// Create. StudentID is the human-readable code, Course the uuid ref.
type FeeCreateDTO struct {
	StudentID      string    `json:"studentId" validate:"required,max=20"`
	CourseID       uuid.UUID `json:"courseId" validate:"required"`
	TotalFee       *float64  `json:"totalFee" validate:"required,min=0"`
	AmountPaid     *float64  `json:"amountPaid" validate:"omitempty,min=0"`
	DueDate        time.Time `json:"dueDate" validate:"required"`
	Discount       *float64  `json:"discount" validate:"omitempty,min=0"`
	DiscountReason string    `json:"discountReason" validate:"omitempty,max=200"`
	Remarks        string    `json:"remarks" validate:"omitempty,max=500"`
}

// Update (partial). Student and course refs are fixed at creation.
type FeeUpdateDTO struct {
	TotalFee       *float64   `json:"totalFee" validate:"omitempty,min=0"`
	AmountPaid     *float64   `json:"amountPaid" validate:"omitempty,min=0"`
	DueDate        *time.Time `json:"dueDate"`
	Discount       *float64   `json:"discount" validate:"omitempty,min=0"`
	DiscountReason *string    `json:"discountReason" validate:"omitempty,max=200"`
	Remarks        *string    `json:"remarks" validate:"omitempty,max=500"`
}

// Payment (POST /api/fees/:id/payment)
type PaymentDTO struct {
	Amount        *float64 `json:"amount" validate:"required"`
	PaymentMethod string   `json:"paymentMethod" validate:"omitempty"`
	TransactionID string   `json:"transactionId" validate:"omitempty,max=100"`
	Remarks       string   `json:"remarks" validate:"omitempty,max=500"`
}

// Join blocks
type FeeStudent struct {
	ID         uuid.UUID `json:"id"`
	StudentID  string    `json:"studentId"`
	Name       string    `json:"name"`
	FatherName string    `json:"fatherName"`
}

type FeeCourse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
}

type InstallmentResponse struct {
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"paymentDate"`
	PaymentMethod string    `json:"paymentMethod"`
	TransactionID string    `json:"transactionId,omitempty"`
	Remarks       string    `json:"remarks,omitempty"`
}

// Response
type FeeResponse struct {
	ID                uuid.UUID             `json:"id"`
	StudentID         string                `json:"studentId"`
	StudentName       string                `json:"studentName"`
	Student           *FeeStudent           `json:"student"`
	Course            *FeeCourse            `json:"course"`
	CourseName        string                `json:"courseName"`
	TotalFee          float64               `json:"totalFee"`
	AmountPaid        float64               `json:"amountPaid"`
	PaymentStatus     string                `json:"paymentStatus"`
	PaymentDate       *time.Time            `json:"paymentDate,omitempty"`
	DueDate           time.Time             `json:"dueDate"`
	Installments      []InstallmentResponse `json:"installments"`
	Discount          float64               `json:"discount"`
	DiscountReason    string                `json:"discountReason,omitempty"`
	Remarks           string                `json:"remarks,omitempty"`
	RemainingAmount   float64               `json:"remainingAmount"`
	PaymentPercentage int                   `json:"paymentPercentage"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToFeeResponse(m model.FeeRecord, students map[uuid.UUID]studentModel.Student, courses map[uuid.UUID]courseModel.Course) FeeResponse {
	var student *FeeStudent
	if s, ok := students[m.FeeStudentID]; ok {
		student = &FeeStudent{
			ID:         s.StudentID,
			StudentID:  s.StudentCode,
			Name:       s.StudentName,
			FatherName: s.StudentFatherName,
		}
	}
	var course *FeeCourse
	if c, ok := courses[m.FeeCourseID]; ok {
		course = &FeeCourse{
			ID:          c.CourseID,
			Name:        c.CourseName,
			Description: c.CourseDescription,
			Price:       c.CoursePrice,
		}
	}
	installments := make([]InstallmentResponse, 0, len(m.FeeInstallments))
	for _, in := range m.FeeInstallments {
		installments = append(installments, InstallmentResponse{
			Amount:        in.Amount,
			PaymentDate:   in.PaymentDate,
			PaymentMethod: string(in.PaymentMethod),
			TransactionID: in.TransactionID,
			Remarks:       in.Remarks,
		})
	}
	return FeeResponse{
		ID:                m.FeeID,
		StudentID:         m.FeeStudentCode,
		StudentName:       m.FeeStudentName,
		Student:           student,
		Course:            course,
		CourseName:        m.FeeCourseName,
		TotalFee:          m.FeeTotalFee,
		AmountPaid:        m.FeeAmountPaid,
		PaymentStatus:     string(m.FeePaymentStatus),
		PaymentDate:       m.FeePaymentDate,
		DueDate:           m.FeeDueDate,
		Installments:      installments,
		Discount:          m.FeeDiscount,
		DiscountReason:    m.FeeDiscountReason,
		Remarks:           m.FeeRemarks,
		RemainingAmount:   m.Remaining(),
		PaymentPercentage: m.PaymentPercentage(),
		CreatedAt:         m.FeeCreatedAt,
		UpdatedAt:         m.FeeUpdatedAt,
	}
}

func ToFeeResponses(list []model.FeeRecord, students map[uuid.UUID]studentModel.Student, courses map[uuid.UUID]courseModel.Course) []FeeResponse {
	out := make([]FeeResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeResponse(v, students, courses))
	}
	return out
}

// FeeCreateDTOToModel builds the record from the dto plus the resolved refs;
// the caller recomputes status before persisting.
func FeeCreateDTOToModel(d FeeCreateDTO, student studentModel.Student, course courseModel.Course) model.FeeRecord {
	paid := 0.0
	if d.AmountPaid != nil {
		paid = *d.AmountPaid
	}
	discount := 0.0
	if d.Discount != nil {
		discount = *d.Discount
	}
	return model.FeeRecord{
		FeeStudentCode:    student.StudentCode,
		FeeStudentName:    student.StudentName,
		FeeStudentID:      student.StudentID,
		FeeCourseID:       course.CourseID,
		FeeCourseName:     course.CourseName,
		FeeTotalFee:       *d.TotalFee,
		FeeAmountPaid:     paid,
		FeeDueDate:        d.DueDate,
		FeeDiscount:       discount,
		FeeDiscountReason: strings.TrimSpace(d.DiscountReason),
		FeeRemarks:        strings.TrimSpace(d.Remarks),
	}
}

// ApplyFeeUpdate mutates only the provided fields.
func ApplyFeeUpdate(m *model.FeeRecord, d FeeUpdateDTO) {
	if d.TotalFee != nil {
		m.FeeTotalFee = *d.TotalFee
	}
	if d.AmountPaid != nil {
		m.FeeAmountPaid = *d.AmountPaid
	}
	if d.DueDate != nil {
		m.FeeDueDate = *d.DueDate
	}
	if d.Discount != nil {
		m.FeeDiscount = *d.Discount
	}
	if d.DiscountReason != nil {
		m.FeeDiscountReason = strings.TrimSpace(*d.DiscountReason)
	}
	if d.Remarks != nil {
		m.FeeRemarks = strings.TrimSpace(*d.Remarks)
	}
}

// StudentIDs / CourseIDs collect distinct refs for lookup fetches.
func StudentIDs(list []model.FeeRecord) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(list))
	out := make([]uuid.UUID, 0, len(list))
	for _, f := range list {
		if _, ok := seen[f.FeeStudentID]; ok {
			continue
		}
		seen[f.FeeStudentID] = struct{}{}
		out = append(out, f.FeeStudentID)
	}
	return out
}

func CourseIDs(list []model.FeeRecord) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(list))
	out := make([]uuid.UUID, 0, len(list))
	for _, f := range list {
		if _, ok := seen[f.FeeCourseID]; ok {
			continue
		}
		seen[f.FeeCourseID] = struct{}{}
		out = append(out, f.FeeCourseID)
	}
	return out
}
