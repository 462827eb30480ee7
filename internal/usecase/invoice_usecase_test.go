package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"konfirmasi_pembayaran/internal/domain/entities"
	"konfirmasi_pembayaran/internal/usecase/interfaces"
	mock_interfaces "konfirmasi_pembayaran/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDecodeInvoiceParam(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain invoice number", "INV-001", "INV-001"},
		{"base64 encoded", "SU5WLTAwMQ==", "INV-001"},
		{"base64 with surrounding space", "  SU5WLTAwMQ==  ", "INV-001"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"base64 of binary stays literal", "AAECAw==", "AAECAw=="},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DecodeInvoiceParam(tc.in); got != tc.want {
				t.Fatalf("DecodeInvoiceParam(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestInvoiceUseCase_Fetch(t *testing.T) {
	t.Run("empty invoice param", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil)
		_, _, err := uc.Fetch(context.Background(), "  ")
		if !errors.Is(err, ErrInvoiceRequired) {
			t.Fatalf("expected ErrInvoiceRequired, got %v", err)
		}
	})

	t.Run("gateway error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIInvoiceGateway(ctrl)
		uc := NewInvoiceUseCase(gw)

		gw.EXPECT().FetchInvoice(gomock.Any(), "INV-404").Return(entities.Invoice{}, nil, interfaces.ErrInvoiceNotFound)

		_, _, err := uc.Fetch(context.Background(), "INV-404")
		if !errors.Is(err, interfaces.ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("base64 param is decoded before the gateway call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIInvoiceGateway(ctrl)
		uc := NewInvoiceUseCase(gw)

		raw := json.RawMessage(`{"data":{"invoice":"INV-001"}}`)
		gw.EXPECT().FetchInvoice(gomock.Any(), "INV-001").Return(entities.Invoice{Invoice: "INV-001", Total: 150000}, raw, nil)

		inv, body, err := uc.Fetch(context.Background(), "SU5WLTAwMQ==")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Invoice != "INV-001" || inv.Total != 150000 {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
		if string(body) != string(raw) {
			t.Fatalf("raw body not passed through: %s", body)
		}
	})
}
