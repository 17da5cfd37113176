package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hutecki/bankiety-api/internal/application/dto"
	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
	"github.com/hutecki/bankiety-api/internal/domain/warehouse"
	"github.com/hutecki/bankiety-api/pkg/logger"
)

const cacheTTL = 5 * time.Minute

// TurnoverUseCase read-only reporting over committed ledger state: per-product
// delivered/used/turnover sums over a date window, JSON or PDF. The JSON
// rendition is cached briefly; the cache is best effort and may be nil.
type TurnoverUseCase struct {
	repo  repository.ReportRepository
	cache Cache
	pdf   PDFGenerator
	log   *logger.Logger
}

// NewTurnoverUseCase builds the use case. cache may be nil to disable caching.
func NewTurnoverUseCase(repo repository.ReportRepository, cache Cache, pdf PDFGenerator, log *logger.Logger) *TurnoverUseCase {
	return &TurnoverUseCase{repo: repo, cache: cache, pdf: pdf, log: log}
}

// Turnover aggregates the scope's domains over [from, to].
func (uc *TurnoverUseCase) Turnover(ctx context.Context, scope string, from, to time.Time) (*dto.TurnoverReportResponse, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: report window ends before it starts", domain.ErrValidation)
	}
	domains, err := warehouse.ParseScope(scope)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("report:turnover:%s:%d:%d", scope, from.Unix(), to.Unix())
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, key); err == nil {
			var resp dto.TurnoverReportResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	resp := &dto.TurnoverReportResponse{From: from, To: to}
	for _, cfg := range domains {
		rows, err := uc.repo.TurnoverByProduct(ctx, cfg.Domain, from, to)
		if err != nil {
			return nil, err
		}
		d := dto.DomainTurnoverDTO{Domain: string(cfg.Domain), Products: make([]dto.ProductTurnoverDTO, 0, len(rows))}
		for _, r := range rows {
			d.Products = append(d.Products, dto.ProductTurnoverDTO{
				ProductID:   r.ProductID,
				ProductName: r.ProductName,
				Category:    r.Category,
				Subcategory: r.Subcategory,
				Unit:        r.Unit,
				Delivered:   r.Delivered,
				Used:        r.Used,
				Turnover:    r.Delivered.Add(r.Used),
				Current:     r.Current,
			})
		}
		resp.Domains = append(resp.Domains, d)
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := uc.cache.Set(ctx, key, string(raw), cacheTTL); err != nil {
				uc.log.Warn().Err(err).Msg("report cache write failed")
			}
		}
	}
	return resp, nil
}

// TurnoverPDF renders the same aggregation as a PDF document.
func (uc *TurnoverUseCase) TurnoverPDF(ctx context.Context, scope string, from, to time.Time) ([]byte, error) {
	report, err := uc.Turnover(ctx, scope, from, to)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateTurnoverPDF(ctx, report)
}
