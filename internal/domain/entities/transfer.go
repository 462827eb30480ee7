package entities

import "strings"

// DestinationBankAccount is one of the fixed company accounts a customer may
// transfer into. Values are static configuration, never derived at runtime.
type DestinationBankAccount struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

func (d DestinationBankAccount) IsZero() bool {
	return d.BankName == "" && d.AccountNumber == ""
}

// TransferDetails is the customer-entered transfer form. TransferAmount is an
// integer in the smallest currency unit; AccountNumber and Notes are optional.
type TransferDetails struct {
	CustomerName    string                  `json:"customerName"`
	AccountNumber   string                  `json:"accountNumber"`
	SenderBank      string                  `json:"senderBank"`
	TransferDate    string                  `json:"transferDate"`
	TransferTime    string                  `json:"transferTime"`
	TransferAmount  int64                   `json:"transferAmount"`
	Notes           string                  `json:"notes"`
	DestinationBank *DestinationBankAccount `json:"destinationBank,omitempty"`
}

// Complete reports whether every required field is filled: customer name
// (after trimming), sender bank, transfer date, transfer time, a positive
// amount and a selected destination.
func (t TransferDetails) Complete() bool {
	return strings.TrimSpace(t.CustomerName) != "" &&
		t.SenderBank != "" &&
		t.TransferDate != "" &&
		t.TransferTime != "" &&
		t.TransferAmount > 0 &&
		t.DestinationBank != nil && !t.DestinationBank.IsZero()
}
