package transfer

import (
	"testing"

	"konfirmasi_pembayaran/internal/domain/entities"
)

func TestClassifyAmount(t *testing.T) {
	const total = int64(150000)

	cases := []struct {
		name     string
		entered  int64
		wantType VerdictType
		wantDiff int64
	}{
		{"empty", 0, VerdictEmpty, 0},
		{"exact", total, VerdictValid, 0},
		{"one over", total + 1, VerdictOverpaid, 1},
		{"one under", total - 1, VerdictUnderpaid, 1},
		{"far over", total + 50000, VerdictOverpaid, 50000},
		{"far under", 1, VerdictUnderpaid, total - 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := ClassifyAmount(tc.entered, total)
			if v.Type != tc.wantType || v.Difference != tc.wantDiff {
				t.Fatalf("ClassifyAmount(%d, %d) = %+v, want type=%s diff=%d", tc.entered, total, v, tc.wantType, tc.wantDiff)
			}
		})
	}

	// Valid for every positive total, not just one.
	for _, total := range []int64{1, 999, 150000, 25000000} {
		if v := ClassifyAmount(total, total); v.Type != VerdictValid {
			t.Fatalf("ClassifyAmount(%d, %d) = %+v, want valid", total, total, v)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"150000", 150000},
		{"150.000", 150000},
		{"Rp 150.000", 150000},
		{"1,500,000", 1500000},
		{"", 0},
		{"abc", 0},
		{"12ab34", 1234},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTransferDetails_Complete(t *testing.T) {
	dest := &entities.DestinationBankAccount{
		BankName:      "Bank BCA",
		AccountNumber: "6105863636",
		AccountName:   "PT. Topsel Raharja Indonesia",
	}
	full := entities.TransferDetails{
		CustomerName:    "Budi Santoso",
		SenderBank:      "BCA",
		TransferDate:    "2025-01-10",
		TransferTime:    "14:30",
		TransferAmount:  150000,
		DestinationBank: dest,
	}

	if !full.Complete() {
		t.Fatalf("fully filled form must be complete: %+v", full)
	}

	// Each required field held back individually must break completeness.
	mutations := map[string]func(d *entities.TransferDetails){
		"customer name": func(d *entities.TransferDetails) { d.CustomerName = "   " },
		"sender bank":   func(d *entities.TransferDetails) { d.SenderBank = "" },
		"transfer date": func(d *entities.TransferDetails) { d.TransferDate = "" },
		"transfer time": func(d *entities.TransferDetails) { d.TransferTime = "" },
		"amount":        func(d *entities.TransferDetails) { d.TransferAmount = 0 },
		"destination":   func(d *entities.TransferDetails) { d.DestinationBank = nil },
	}
	for name, mutate := range mutations {
		t.Run("missing "+name, func(t *testing.T) {
			d := full
			mutate(&d)
			if d.Complete() {
				t.Fatalf("form missing %s must be incomplete", name)
			}
		})
	}

	// Optional fields do not gate completeness.
	d := full
	d.AccountNumber = ""
	d.Notes = ""
	if !d.Complete() {
		t.Fatal("account number and notes are optional")
	}
}

func TestSenderBankOptions_IsACopy(t *testing.T) {
	opts := SenderBankOptions()
	if len(opts) != 23 {
		t.Fatalf("expected 23 sender bank options, got %d", len(opts))
	}
	opts[0] = "mutated"
	if SenderBankOptions()[0] != "BCA" {
		t.Fatal("callers must not be able to mutate the option list")
	}
}
