package request

import (
	"strings"

	"konfirmasi_pembayaran/internal/domain/entities"
	"konfirmasi_pembayaran/internal/domain/transfer"
)

// StartSessionRequest opens a confirmation session for an invoice. The
// invoice value may be the plain number or the base64 form carried in
// payment links.
type StartSessionRequest struct {
	Invoice string `json:"invoice" binding:"required"`
}

// SelectDestinationRequest picks which of the two offered company accounts
// the customer transfers into.
type SelectDestinationRequest struct {
	Bank string `json:"bank" binding:"required,oneof=bca mandiri BCA Mandiri MANDIRI"`
}

// TransferDetailsRequest is the transfer form. The amount arrives as typed,
// currency prefix and separators included, and is normalized server-side.
type TransferDetailsRequest struct {
	CustomerName   string `json:"customerName" binding:"required"`
	AccountNumber  string `json:"accountNumber"`
	SenderBank     string `json:"senderBank" binding:"required"`
	TransferDate   string `json:"transferDate" binding:"required"`
	TransferTime   string `json:"transferTime" binding:"required"`
	TransferAmount string `json:"transferAmount" binding:"required"`
	Notes          string `json:"notes"`
}

func (r TransferDetailsRequest) ToEntity() entities.TransferDetails {
	return entities.TransferDetails{
		CustomerName:   strings.TrimSpace(r.CustomerName),
		AccountNumber:  strings.TrimSpace(r.AccountNumber),
		SenderBank:     strings.TrimSpace(r.SenderBank),
		TransferDate:   strings.TrimSpace(r.TransferDate),
		TransferTime:   strings.TrimSpace(r.TransferTime),
		TransferAmount: transfer.ParseAmount(r.TransferAmount),
		Notes:          strings.TrimSpace(r.Notes),
	}
}
