package request

import "testing"

func TestTransferDetailsRequest_ToEntity(t *testing.T) {
	r := TransferDetailsRequest{
		CustomerName:   "  Budi Santoso  ",
		AccountNumber:  " 1234567890 ",
		SenderBank:     "BCA",
		TransferDate:   "2025-01-10",
		TransferTime:   "14:30",
		TransferAmount: "Rp 150.000",
		Notes:          " lunas ",
	}

	d := r.ToEntity()
	if d.CustomerName != "Budi Santoso" {
		t.Fatalf("name not trimmed: %q", d.CustomerName)
	}
	if d.TransferAmount != 150000 {
		t.Fatalf("amount not normalized: %d", d.TransferAmount)
	}
	if d.Notes != "lunas" {
		t.Fatalf("notes not trimmed: %q", d.Notes)
	}
}

func TestTransferDetailsRequest_ToEntity_NoDigits(t *testing.T) {
	r := TransferDetailsRequest{TransferAmount: "seratus ribu"}
	if got := r.ToEntity().TransferAmount; got != 0 {
		t.Fatalf("expected 0 for digitless amount, got %d", got)
	}
}
