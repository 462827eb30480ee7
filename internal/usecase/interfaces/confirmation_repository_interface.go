package interfaces

import (
	"context"

	"konfirmasi_pembayaran/internal/domain/entities"
)

// IConfirmationRepository abstracts DynamoDB persistence for submitted
// confirmation records.
type IConfirmationRepository interface {
	Create(ctx context.Context, c entities.Confirmation) (entities.Confirmation, error)
	GetByID(ctx context.Context, id string) (entities.Confirmation, error)
	ListByInvoice(ctx context.Context, invoice string) ([]entities.Confirmation, error)
}
