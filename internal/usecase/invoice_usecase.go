package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"konfirmasi_pembayaran/internal/domain/entities"
	"konfirmasi_pembayaran/internal/usecase/interfaces"
)

var ErrInvoiceRequired = errors.New("invoice required")

// IInvoiceUseCase encapsulates the "look up an order by invoice number"
// behavior backing the proxy endpoint and the session start step.

type IInvoiceUseCase interface {
	Fetch(ctx context.Context, invoiceParam string) (entities.Invoice, json.RawMessage, error)
}

type InvoiceUseCase struct {
	gateway interfaces.IInvoiceGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(gateway interfaces.IInvoiceGateway) *InvoiceUseCase {
	return &InvoiceUseCase{gateway: gateway}
}

// Fetch resolves the raw query parameter to an invoice number and retrieves
// the order from the upstream service. Links may carry the invoice number
// base64-encoded, so a decodable parameter is decoded first and the literal
// value is the fallback.
func (u *InvoiceUseCase) Fetch(ctx context.Context, invoiceParam string) (entities.Invoice, json.RawMessage, error) {
	invoiceNumber := DecodeInvoiceParam(invoiceParam)
	if invoiceNumber == "" {
		log.Printf("[invoice][usecase] fetch rejected: empty invoice param")
		return entities.Invoice{}, nil, ErrInvoiceRequired
	}

	log.Printf("[invoice][usecase] fetch start invoice=%s", invoiceNumber)
	inv, raw, err := u.gateway.FetchInvoice(ctx, invoiceNumber)
	if err != nil {
		log.Printf("[invoice][usecase] fetch failed invoice=%s err=%v", invoiceNumber, err)
		return entities.Invoice{}, nil, err
	}
	log.Printf("[invoice][usecase] fetch success invoice=%s total=%d products=%d", inv.Invoice, inv.Total, len(inv.Products))
	return inv, raw, nil
}

// DecodeInvoiceParam accepts either a plain invoice number or a
// base64-encoded one. Plain numbers like INV-001 are not valid base64, so
// decoding is attempted first and the literal value wins when decoding fails
// or yields non-printable bytes.
func DecodeInvoiceParam(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(decoded) == 0 {
		return raw
	}
	for _, b := range decoded {
		if b < 0x20 || b > 0x7e {
			return raw
		}
	}
	return strings.TrimSpace(string(decoded))
}
