package interfaces

import (
	"context"
	"errors"

	"konfirmasi_pembayaran/internal/domain/entities"
)

// Confirmation Webhook error vocabulary, derived from the automation
// platform's status code and parsed response body.
var (
	ErrWebhookNotConfigured = errors.New("confirmation webhook is not registered")
	ErrWebhookTestMode      = errors.New("confirmation webhook is in test mode")
	ErrWebhookNotFound      = errors.New("confirmation webhook endpoint not found")
	ErrWebhookServerError   = errors.New("confirmation webhook internal error")
)

// IConfirmationWebhook delivers the assembled confirmation payload to the
// downstream automation workflow.
type IConfirmationWebhook interface {
	Send(ctx context.Context, payload entities.ConfirmationPayload) error
}
