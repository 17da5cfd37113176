package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
)

var _ repository.WeeklyPlanRepository = (*WeeklyPlanRepo)(nil)

const planColumns = `id, company_name, weekday, service_hours, hall, headcount,
	coordinator, remarks, year_week, created_at, updated_at`

// weekdayOrder sorts Polish weekday names Monday-first in SQL.
const weekdayOrder = `array_position(
	ARRAY['poniedziałek','wtorek','środa','czwartek','piątek','sobota','niedziela'], weekday)`

// WeeklyPlanRepo implements the WeeklyPlanRepository port over PostgreSQL.
type WeeklyPlanRepo struct {
	q Querier
}

// NewWeeklyPlanRepository builds the adapter.
func NewWeeklyPlanRepository(q Querier) *WeeklyPlanRepo {
	return &WeeklyPlanRepo{q: q}
}

// Create persists a planner entry.
func (r *WeeklyPlanRepo) Create(entry *entity.WeeklyPlanEntry) error {
	query := `
		INSERT INTO weekly_plan (id, company_name, weekday, service_hours, hall, headcount,
			coordinator, remarks, year_week, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.CompanyName, entry.Weekday, entry.ServiceHours, entry.Hall, entry.Headcount,
		entry.Coordinator, entry.Remarks, entry.YearWeek, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plan entry: %w", err)
	}
	return nil
}

// GetByID fetches one planner entry.
func (r *WeeklyPlanRepo) GetByID(id string) (*entity.WeeklyPlanEntry, error) {
	query := `SELECT ` + planColumns + ` FROM weekly_plan WHERE id = $1`
	var e entity.WeeklyPlanEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.CompanyName, &e.Weekday, &e.ServiceHours, &e.Hall, &e.Headcount,
		&e.Coordinator, &e.Remarks, &e.YearWeek, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan entry: %w", err)
	}
	return &e, nil
}

// ListByWeek returns one week's entries ordered by weekday then hours.
func (r *WeeklyPlanRepo) ListByWeek(yearWeek string) ([]*entity.WeeklyPlanEntry, error) {
	query := `SELECT ` + planColumns + ` FROM weekly_plan WHERE year_week = $1
		ORDER BY ` + weekdayOrder + `, service_hours`
	rows, err := r.q.Query(context.Background(), query, yearWeek)
	if err != nil {
		return nil, fmt.Errorf("list plan entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.WeeklyPlanEntry
	for rows.Next() {
		var e entity.WeeklyPlanEntry
		if err := rows.Scan(
			&e.ID, &e.CompanyName, &e.Weekday, &e.ServiceHours, &e.Hall, &e.Headcount,
			&e.Coordinator, &e.Remarks, &e.YearWeek, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan plan entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update persists a planner entry edit.
func (r *WeeklyPlanRepo) Update(entry *entity.WeeklyPlanEntry) error {
	query := `
		UPDATE weekly_plan SET company_name = $2, weekday = $3, service_hours = $4, hall = $5,
			headcount = $6, coordinator = $7, remarks = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.CompanyName, entry.Weekday, entry.ServiceHours, entry.Hall,
		entry.Headcount, entry.Coordinator, entry.Remarks, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update plan entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: plan entry %q", domain.ErrNotFound, entry.ID)
	}
	return nil
}

// Delete removes one planner entry.
func (r *WeeklyPlanRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM weekly_plan WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plan entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: plan entry %q", domain.ErrNotFound, id)
	}
	return nil
}

// DeleteOtherWeeks removes every entry outside keepYearWeek.
func (r *WeeklyPlanRepo) DeleteOtherWeeks(keepYearWeek string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM weekly_plan WHERE year_week <> $1`, keepYearWeek)
	if err != nil {
		return 0, fmt.Errorf("cleanup old weeks: %w", err)
	}
	return cmd.RowsAffected(), nil
}
