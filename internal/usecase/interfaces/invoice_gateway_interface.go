package interfaces

import (
	"context"
	"encoding/json"
	"errors"

	"konfirmasi_pembayaran/internal/domain/entities"
)

// Invoice Gateway error vocabulary. The HTTP adapter and the pipeline only
// ever see these normalized kinds; raw transport errors never cross the
// gateway boundary.
var (
	ErrInvoiceRateLimited     = errors.New("order api rate limit exceeded")
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrInvoiceUnauthorized    = errors.New("order api unauthorized")
	ErrInvoiceServerError     = errors.New("order api server error")
	ErrInvoiceInvalidResponse = errors.New("order api returned a non-json response")
	ErrInvoiceNetwork         = errors.New("order api unreachable")
)

// IInvoiceGateway abstracts the remote order service. FetchInvoice returns
// the parsed invoice together with the raw upstream body so the proxy
// endpoint can pass it through untouched.
type IInvoiceGateway interface {
	FetchInvoice(ctx context.Context, invoiceNumber string) (entities.Invoice, json.RawMessage, error)
}
