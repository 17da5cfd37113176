package dto

import (
	"time"

	"github.com/hutecki/bankiety-api/internal/domain/entity"
)

// CreatePlanEntryRequest input for booking a banquet in the weekly planner.
// YearWeek empty defaults to the current ISO week.
type CreatePlanEntryRequest struct {
	CompanyName  string `json:"company_name"`
	Weekday      string `json:"weekday"`
	ServiceHours string `json:"service_hours"`
	Hall         string `json:"hall"`
	Headcount    int    `json:"headcount"`
	Coordinator  string `json:"coordinator"`
	Remarks      string `json:"remarks"`
	YearWeek     string `json:"year_week"`
}

// UpdatePlanEntryRequest partial planner entry edit.
type UpdatePlanEntryRequest struct {
	CompanyName  *string `json:"company_name"`
	Weekday      *string `json:"weekday"`
	ServiceHours *string `json:"service_hours"`
	Hall         *string `json:"hall"`
	Headcount    *int    `json:"headcount"`
	Coordinator  *string `json:"coordinator"`
	Remarks      *string `json:"remarks"`
}

// PlanEntryResponse output for one planner entry.
type PlanEntryResponse struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"company_name"`
	Weekday      string    `json:"weekday"`
	ServiceHours string    `json:"service_hours"`
	Hall         string    `json:"hall,omitempty"`
	Headcount    int       `json:"headcount,omitempty"`
	Coordinator  string    `json:"coordinator,omitempty"`
	Remarks      string    `json:"remarks,omitempty"`
	YearWeek     string    `json:"year_week"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToPlanEntryResponse maps the entity.
func ToPlanEntryResponse(e *entity.WeeklyPlanEntry) *PlanEntryResponse {
	if e == nil {
		return nil
	}
	return &PlanEntryResponse{
		ID:           e.ID,
		CompanyName:  e.CompanyName,
		Weekday:      e.Weekday,
		ServiceHours: e.ServiceHours,
		Hall:         e.Hall,
		Headcount:    e.Headcount,
		Coordinator:  e.Coordinator,
		Remarks:      e.Remarks,
		YearWeek:     e.YearWeek,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
