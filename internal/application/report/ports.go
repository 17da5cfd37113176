package report

import (
	"context"
	"time"

	"github.com/hutecki/bankiety-api/internal/application/dto"
)

// Cache is the small caching contract the report use case needs. A miss is
// reported via the implementation's miss error; any cache failure only
// degrades to a direct read.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// PDFGenerator renders a turnover report as PDF bytes.
type PDFGenerator interface {
	GenerateTurnoverPDF(ctx context.Context, report *dto.TurnoverReportResponse) ([]byte, error)
}
