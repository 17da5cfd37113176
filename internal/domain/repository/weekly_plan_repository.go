package repository

import "github.com/hutecki/bankiety-api/internal/domain/entity"

// WeeklyPlanRepository defines the persistence port for planner entries.
type WeeklyPlanRepository interface {
	Create(entry *entity.WeeklyPlanEntry) error
	GetByID(id string) (*entity.WeeklyPlanEntry, error)
	// ListByWeek returns the entries of one ISO week, ordered by weekday
	// then service hours.
	ListByWeek(yearWeek string) ([]*entity.WeeklyPlanEntry, error)
	Update(entry *entity.WeeklyPlanEntry) error
	Delete(id string) error
	// DeleteOtherWeeks removes every entry outside the given week. Returns rows deleted.
	DeleteOtherWeeks(keepYearWeek string) (int64, error)
}
