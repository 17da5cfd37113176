package usecase

import (
	"fmt"

	"github.com/hutecki/bankiety-api/internal/application/dto"
	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
	"github.com/hutecki/bankiety-api/internal/domain/warehouse"
	"github.com/hutecki/bankiety-api/pkg/logger"
)

// ConfirmationToken must be sent verbatim to run the bulk reset.
const ConfirmationToken = "ZERO_ALL_QUANTITIES"

// ResetUseCase zeroes every product quantity in scope. A destructive
// administrative override: it bypasses the ledger and writes no movement
// entries. Domains are processed independently.
type ResetUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewResetUseCase builds the use case.
func NewResetUseCase(repo repository.ProductRepository, log *logger.Logger) *ResetUseCase {
	return &ResetUseCase{repo: repo, log: log}
}

// ZeroQuantities resets quantities (and, where the catalog says so, the
// cumulative totals) for every product in scope, gated by the confirmation
// token.
func (uc *ResetUseCase) ZeroQuantities(scope, confirm string) (*dto.ZeroQuantitiesResponse, error) {
	if confirm != ConfirmationToken {
		return nil, fmt.Errorf("%w: set confirm to %q", domain.ErrConfirmationRequired, ConfirmationToken)
	}
	domains, err := warehouse.ParseScope(scope)
	if err != nil {
		return nil, err
	}

	resp := &dto.ZeroQuantitiesResponse{
		Results: make(map[string]dto.DomainResetResult, len(domains)),
	}
	for _, cfg := range domains {
		updated, err := uc.repo.ZeroQuantities(cfg.Domain, cfg.ResetClearsTotals)
		result := dto.DomainResetResult{Updated: updated}
		if err != nil {
			result.Error = err.Error()
			uc.log.Error().Err(err).Str("domain", string(cfg.Domain)).Msg("bulk reset failed")
		} else {
			resp.TotalUpdated += updated
			uc.log.Warn().Str("domain", string(cfg.Domain)).Int64("updated", updated).Msg("quantities zeroed")
		}
		resp.Results[string(cfg.Domain)] = result
	}
	return resp, nil
}
