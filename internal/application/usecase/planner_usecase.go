package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hutecki/bankiety-api/internal/application/dto"
	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
)

// PlannerUseCase weekly banquet planner: day-bucketed CRUD within an ISO
// week key, plus manual cleanup of past weeks. No scheduler.
type PlannerUseCase struct {
	repo repository.WeeklyPlanRepository
	now  func() time.Time
}

// NewPlannerUseCase builds the use case.
func NewPlannerUseCase(repo repository.WeeklyPlanRepository) *PlannerUseCase {
	return &PlannerUseCase{repo: repo, now: time.Now}
}

// CurrentWeek returns the ISO week key, e.g. "2025-W39".
func (uc *PlannerUseCase) CurrentWeek() string {
	return WeekKey(uc.now())
}

// WeekKey formats t's ISO year and week as "2006-W02".
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func validWeekday(day string) bool {
	for _, d := range entity.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Create books a banquet. YearWeek empty defaults to the current week.
func (uc *PlannerUseCase) Create(in dto.CreatePlanEntryRequest) (*dto.PlanEntryResponse, error) {
	if in.CompanyName == "" || in.ServiceHours == "" {
		return nil, fmt.Errorf("%w: company name and service hours are required", domain.ErrValidation)
	}
	if !validWeekday(in.Weekday) {
		return nil, fmt.Errorf("%w: unknown weekday %q", domain.ErrValidation, in.Weekday)
	}
	if in.Headcount < 0 {
		return nil, fmt.Errorf("%w: headcount cannot be negative", domain.ErrValidation)
	}
	if in.YearWeek == "" {
		in.YearWeek = uc.CurrentWeek()
	}

	now := uc.now()
	entry := &entity.WeeklyPlanEntry{
		ID:           uuid.New().String(),
		CompanyName:  in.CompanyName,
		Weekday:      in.Weekday,
		ServiceHours: in.ServiceHours,
		Hall:         in.Hall,
		Headcount:    in.Headcount,
		Coordinator:  in.Coordinator,
		Remarks:      in.Remarks,
		YearWeek:     in.YearWeek,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return dto.ToPlanEntryResponse(entry), nil
}

// ListWeek returns the entries of one week (current week when empty).
func (uc *PlannerUseCase) ListWeek(yearWeek string) (string, []dto.PlanEntryResponse, error) {
	if yearWeek == "" {
		yearWeek = uc.CurrentWeek()
	}
	list, err := uc.repo.ListByWeek(yearWeek)
	if err != nil {
		return "", nil, err
	}
	items := make([]dto.PlanEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *dto.ToPlanEntryResponse(e))
	}
	return yearWeek, items, nil
}

// Update edits a planner entry.
func (uc *PlannerUseCase) Update(id string, in dto.UpdatePlanEntryRequest) (*dto.PlanEntryResponse, error) {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: plan entry %q", domain.ErrNotFound, id)
	}
	if in.CompanyName != nil {
		if *in.CompanyName == "" {
			return nil, fmt.Errorf("%w: company name cannot be empty", domain.ErrValidation)
		}
		entry.CompanyName = *in.CompanyName
	}
	if in.Weekday != nil {
		if !validWeekday(*in.Weekday) {
			return nil, fmt.Errorf("%w: unknown weekday %q", domain.ErrValidation, *in.Weekday)
		}
		entry.Weekday = *in.Weekday
	}
	if in.ServiceHours != nil {
		entry.ServiceHours = *in.ServiceHours
	}
	if in.Hall != nil {
		entry.Hall = *in.Hall
	}
	if in.Headcount != nil {
		if *in.Headcount < 0 {
			return nil, fmt.Errorf("%w: headcount cannot be negative", domain.ErrValidation)
		}
		entry.Headcount = *in.Headcount
	}
	if in.Coordinator != nil {
		entry.Coordinator = *in.Coordinator
	}
	if in.Remarks != nil {
		entry.Remarks = *in.Remarks
	}
	entry.UpdatedAt = uc.now()

	if err := uc.repo.Update(entry); err != nil {
		return nil, err
	}
	return dto.ToPlanEntryResponse(entry), nil
}

// Delete removes one planner entry.
func (uc *PlannerUseCase) Delete(id string) error {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("%w: plan entry %q", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

// CleanupOldWeeks removes every entry outside the current week.
func (uc *PlannerUseCase) CleanupOldWeeks() (int64, error) {
	return uc.repo.DeleteOtherWeeks(uc.CurrentWeek())
}
