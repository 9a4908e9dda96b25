package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"academy_backend/internals/features/finance/budget/model"
)

////////////////////////////////////////////////////////////////////////////////
// BUDGET — DTO
////////////////////////////////////////////////////////////////////////////////

// Create (manual records only; synced records come from the sync endpoint)
type BudgetCreateDTO struct {
	Type        string     `json:"type" validate:"required"`
	Description string     `json:"description" validate:"required,max=500"`
	Amount      *float64   `json:"amount" validate:"required,min=0"`
	Date        *time.Time `json:"date"`
	Category    string     `json:"category" validate:"required"`
}

// Update (partial)
type BudgetUpdateDTO struct {
	Type        *string    `json:"type"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Amount      *float64   `json:"amount" validate:"omitempty,min=0"`
	Date        *time.Time `json:"date"`
	Category    *string    `json:"category"`
}

// Response
type BudgetResponse struct {
	ID                uuid.UUID  `json:"id"`
	Type              string     `json:"type"`
	Description       string     `json:"description"`
	Amount            float64    `json:"amount"`
	Date              time.Time  `json:"date"`
	Category          string     `json:"category"`
	Month             string     `json:"month"`
	Year              int        `json:"year"`
	SourceType        string     `json:"sourceType"`
	SourceID          *uuid.UUID `json:"sourceId,omitempty"`
	IsSystemGenerated bool       `json:"isSystemGenerated"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToBudgetResponse(m model.BudgetRecord) BudgetResponse {
	return BudgetResponse{
		ID:                m.BudgetID,
		Type:              string(m.BudgetType),
		Description:       m.BudgetDescription,
		Amount:            m.BudgetAmount,
		Date:              m.BudgetDate,
		Category:          string(m.BudgetCategory),
		Month:             m.BudgetMonth,
		Year:              m.BudgetYear,
		SourceType:        string(m.BudgetSourceType),
		SourceID:          m.BudgetSourceID,
		IsSystemGenerated: m.BudgetIsSystemGenerated,
		CreatedAt:         m.BudgetCreatedAt,
		UpdatedAt:         m.BudgetUpdatedAt,
	}
}

func ToBudgetResponses(list []model.BudgetRecord) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToBudgetResponse(v))
	}
	return out
}

// BudgetCreateDTOToModel builds a manual record; the caller stamps the
// calendar bucket before persisting.
func BudgetCreateDTOToModel(d BudgetCreateDTO, now time.Time) model.BudgetRecord {
	date := now
	if d.Date != nil {
		date = *d.Date
	}
	return model.BudgetRecord{
		BudgetType:        model.BudgetType(strings.TrimSpace(d.Type)),
		BudgetDescription: strings.TrimSpace(d.Description),
		BudgetAmount:      *d.Amount,
		BudgetDate:        date,
		BudgetCategory:    model.BudgetCategory(strings.ToLower(strings.TrimSpace(d.Category))),
		BudgetSourceType:  model.SourceTypeManual,
	}
}

// ApplyBudgetUpdate mutates only the provided fields.
func ApplyBudgetUpdate(m *model.BudgetRecord, d BudgetUpdateDTO) {
	if d.Type != nil {
		m.BudgetType = model.BudgetType(strings.TrimSpace(*d.Type))
	}
	if d.Description != nil {
		m.BudgetDescription = strings.TrimSpace(*d.Description)
	}
	if d.Amount != nil {
		m.BudgetAmount = *d.Amount
	}
	if d.Date != nil {
		m.BudgetDate = *d.Date
	}
	if d.Category != nil {
		m.BudgetCategory = model.BudgetCategory(strings.ToLower(strings.TrimSpace(*d.Category)))
	}
}
