package usecase

import (
	"time"

	"github.com/hutecki/bankiety-api/internal/application/dto"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
	"github.com/hutecki/bankiety-api/internal/domain/warehouse"
	"github.com/hutecki/bankiety-api/pkg/logger"
)

// retentionCutoff: ledger entries older than one month get deleted. Fixed,
// not configurable, matching the manual cleanup the crews run.
func retentionCutoff(now time.Time) time.Time {
	return now.AddDate(0, -1, 0)
}

// RetentionUseCase bulk-deletes aged ledger entries and reports retention
// statistics. Never touches product quantities. Each domain is processed
// independently: one failing domain does not abort the rest.
type RetentionUseCase struct {
	repo repository.MovementRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewRetentionUseCase builds the use case.
func NewRetentionUseCase(repo repository.MovementRepository, log *logger.Logger) *RetentionUseCase {
	return &RetentionUseCase{repo: repo, log: log, now: time.Now}
}

// Cleanup deletes entries older than the fixed cutoff across the scope.
// Idempotent: a second run with nothing newly aged in deletes zero rows.
func (uc *RetentionUseCase) Cleanup(scope string) (*dto.CleanupResponse, error) {
	domains, err := warehouse.ParseScope(scope)
	if err != nil {
		return nil, err
	}
	cutoff := retentionCutoff(uc.now())

	resp := &dto.CleanupResponse{
		Results:    make(map[string]dto.DomainCleanupResult, len(domains)),
		CutoffDate: cutoff.Format(time.RFC3339),
	}
	for _, cfg := range domains {
		deleted, err := uc.repo.DeleteOlderThan(cfg.Domain, cutoff)
		result := dto.DomainCleanupResult{Deleted: deleted}
		if err != nil {
			result.Error = err.Error()
			uc.log.Error().Err(err).Str("domain", string(cfg.Domain)).Msg("retention cleanup failed")
		} else {
			resp.TotalDeleted += deleted
		}
		resp.Results[string(cfg.Domain)] = result
	}
	return resp, nil
}

// Stats reports per-domain entry counts and how many are eligible for
// deletion, without mutating anything.
func (uc *RetentionUseCase) Stats(scope string) (*dto.RetentionStatsResponse, error) {
	domains, err := warehouse.ParseScope(scope)
	if err != nil {
		return nil, err
	}
	cutoff := retentionCutoff(uc.now())

	resp := &dto.RetentionStatsResponse{
		Stats:      make(map[string]dto.DomainRetentionStats, len(domains)),
		CutoffDate: cutoff.Format(time.RFC3339),
	}
	for _, cfg := range domains {
		stats := dto.DomainRetentionStats{}
		total, err := uc.repo.Count(cfg.Domain)
		if err == nil {
			stats.TotalEntries = total
			var eligible int64
			eligible, err = uc.repo.CountOlderThan(cfg.Domain, cutoff)
			stats.EligibleForDeletion = eligible
		}
		if err != nil {
			stats.Error = err.Error()
		} else {
			resp.TotalToKeep += stats.TotalEntries - stats.EligibleForDeletion
		}
		resp.Stats[string(cfg.Domain)] = stats
	}
	return resp, nil
}
