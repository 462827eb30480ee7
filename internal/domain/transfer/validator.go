package transfer

import (
	"strconv"
	"strings"
)

// VerdictType is the outcome of comparing an entered transfer amount against
// the invoice total.
type VerdictType string

const (
	VerdictEmpty     VerdictType = "empty"
	VerdictValid     VerdictType = "valid"
	VerdictOverpaid  VerdictType = "overpaid"
	VerdictUnderpaid VerdictType = "underpaid"
)

// AmountVerdict carries the classification and, for a mismatch, the absolute
// difference in the smallest currency unit.
type AmountVerdict struct {
	Type       VerdictType `json:"type"`
	Difference int64       `json:"difference,omitempty"`
}

// ClassifyAmount compares an entered amount to the billed total. Zero means
// the customer has not typed anything yet; a mismatch reports how far off
// the entry is, in either direction.
func ClassifyAmount(entered, total int64) AmountVerdict {
	switch {
	case entered == 0:
		return AmountVerdict{Type: VerdictEmpty}
	case entered > total:
		return AmountVerdict{Type: VerdictOverpaid, Difference: entered - total}
	case entered < total:
		return AmountVerdict{Type: VerdictUnderpaid, Difference: total - entered}
	default:
		return AmountVerdict{Type: VerdictValid}
	}
}

// ParseAmount turns free-form amount input into an integer amount. Anything
// that is not a digit (currency prefixes, thousand separators) is stripped
// before parsing; an input with no digits parses to zero.
func ParseAmount(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// senderBanks is the fixed suggestion list offered for the sender-bank field.
// Free-text entries outside this list are still accepted.
var senderBanks = []string{
	"BCA",
	"BRI",
	"BNI",
	"Mandiri",
	"CIMB Niaga",
	"Danamon",
	"Permata",
	"BTN",
	"Bank Mega",
	"OCBC NISP",
	"Panin Bank",
	"Bank Syariah Indonesia (BSI)",
	"Muamalat",
	"Bank Jago",
	"Jenius",
	"Blu BCA",
	"Allo Bank",
	"Seabank",
	"GoPay",
	"OVO",
	"DANA",
	"ShopeePay",
	"LinkAja",
}

// SenderBankOptions returns a copy of the suggestion list.
func SenderBankOptions() []string {
	out := make([]string, len(senderBanks))
	copy(out, senderBanks)
	return out
}
