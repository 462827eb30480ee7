package orders

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"konfirmasi_pembayaran/internal/usecase/interfaces"
)

func TestNewOrderAPIGateway_MissingBaseURL(t *testing.T) {
	if _, err := NewOrderAPIGateway("  ", "token"); !errors.Is(err, ErrMissingOrderAPIBaseURL) {
		t.Fatalf("expected ErrMissingOrderAPIBaseURL, got %v", err)
	}
}

func TestOrderAPIGateway_FetchInvoice_Success(t *testing.T) {
	const respBody = `{"data":{"invoice":"INV-001","total":150000,"paymentMethod":{"name":"Transfer Bank"},"products":[{"name":"Sepeda Listrik XL","price":"150000","qty":1}]}}`

	var gotPath, gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("invoice")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(respBody))
	}))
	defer srv.Close()

	gateway, err := NewOrderAPIGateway(srv.URL, "Bearer token-123")
	if err != nil {
		t.Fatalf("NewOrderAPIGateway failed: %v", err)
	}

	inv, raw, err := gateway.FetchInvoice(context.Background(), "INV-001")
	if err != nil {
		t.Fatalf("FetchInvoice failed: %v", err)
	}
	if gotPath != "/api/v1/cms/orders/detail" {
		t.Fatalf("expected detail path, got %s", gotPath)
	}
	if gotQuery != "INV-001" {
		t.Fatalf("expected invoice query INV-001, got %s", gotQuery)
	}
	if gotAuth != "Bearer token-123" {
		t.Fatalf("expected authorization header forwarded, got %q", gotAuth)
	}
	if inv.Invoice != "INV-001" || inv.Total != 150000 {
		t.Fatalf("unexpected invoice parsed: %+v", inv)
	}
	if len(inv.Products) != 1 || inv.Products[0].Name != "Sepeda Listrik XL" {
		t.Fatalf("unexpected products parsed: %+v", inv.Products)
	}
	if string(raw) != respBody {
		t.Fatalf("expected raw upstream body passthrough, got %s", raw)
	}
}

func TestOrderAPIGateway_FetchInvoice_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"rate limited", http.StatusTooManyRequests, interfaces.ErrInvoiceRateLimited},
		{"not found", http.StatusNotFound, interfaces.ErrInvoiceNotFound},
		{"unauthorized", http.StatusUnauthorized, interfaces.ErrInvoiceUnauthorized},
		{"forbidden", http.StatusForbidden, interfaces.ErrInvoiceUnauthorized},
		{"server error", http.StatusInternalServerError, interfaces.ErrInvoiceServerError},
		{"bad gateway", http.StatusBadGateway, interfaces.ErrInvoiceServerError},
		{"unexpected 4xx", http.StatusTeapot, interfaces.ErrInvoiceServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			gateway, err := NewOrderAPIGateway(srv.URL, "")
			if err != nil {
				t.Fatalf("NewOrderAPIGateway failed: %v", err)
			}

			_, _, err = gateway.FetchInvoice(context.Background(), "INV-001")
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v for status %d, got %v", tt.want, tt.status, err)
			}
		})
	}
}

func TestOrderAPIGateway_FetchInvoice_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>maintenance page</html>"))
	}))
	defer srv.Close()

	gateway, err := NewOrderAPIGateway(srv.URL, "")
	if err != nil {
		t.Fatalf("NewOrderAPIGateway failed: %v", err)
	}

	_, _, err = gateway.FetchInvoice(context.Background(), "INV-001")
	if !errors.Is(err, interfaces.ErrInvoiceInvalidResponse) {
		t.Fatalf("expected ErrInvoiceInvalidResponse, got %v", err)
	}
}

func TestOrderAPIGateway_FetchInvoice_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	gateway, err := NewOrderAPIGateway(srv.URL, "")
	if err != nil {
		t.Fatalf("NewOrderAPIGateway failed: %v", err)
	}
	srv.Close()

	_, _, err = gateway.FetchInvoice(context.Background(), "INV-001")
	if !errors.Is(err, interfaces.ErrInvoiceNetwork) {
		t.Fatalf("expected ErrInvoiceNetwork, got %v", err)
	}
}
