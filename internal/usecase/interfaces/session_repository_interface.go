package interfaces

import (
	"context"

	"konfirmasi_pembayaran/internal/domain/entities"
)

// ISessionRepository abstracts DynamoDB persistence for ConfirmationSession.
//
// Save is a full-item put: sessions are single-writer per browser context, so
// last-writer-wins is acceptable and no conditional update is needed.
type ISessionRepository interface {
	Create(ctx context.Context, s entities.ConfirmationSession) (entities.ConfirmationSession, error)
	GetByID(ctx context.Context, id string) (entities.ConfirmationSession, error)
	Save(ctx context.Context, s entities.ConfirmationSession) (entities.ConfirmationSession, error)
	GetByInvoice(ctx context.Context, invoice string) (entities.ConfirmationSession, error)
}
