package ledger

import (
	"context"

	"github.com/hutecki/bankiety-api/internal/domain/repository"
)

// TxRunner executes fn with repositories bound to one storage transaction.
// The product update and the ledger append either both commit or both roll
// back; there is no partial-failure window.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		movements repository.MovementRepository,
	) error) error
}
