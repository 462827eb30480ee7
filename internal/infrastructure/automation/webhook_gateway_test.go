package automation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"konfirmasi_pembayaran/internal/domain/entities"
	"konfirmasi_pembayaran/internal/usecase/interfaces"
)

func TestNewWebhookGateway_MissingURL(t *testing.T) {
	if _, err := NewWebhookGateway("  "); !errors.Is(err, ErrMissingWebhookURL) {
		t.Fatalf("expected ErrMissingWebhookURL, got %v", err)
	}
}

func TestWebhookGateway_Send_Success(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"message":"Workflow was started"}`))
	}))
	defer srv.Close()

	gateway, err := NewWebhookGateway(srv.URL)
	if err != nil {
		t.Fatalf("NewWebhookGateway failed: %v", err)
	}

	payload := entities.ConfirmationPayload{
		Invoice:       "INV-001",
		Total:         150000,
		PaymentMethod: "Transfer Bank",
		PaymentProof:  "https://i.ibb.co/abc/display.png",
		SubmittedAt:   "2025-07-01T10:00:00Z",
	}
	if err := gateway.Send(context.Background(), payload); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if gotContentType != "application/json" {
		t.Fatalf("expected json content type, got %q", gotContentType)
	}
	var sent entities.ConfirmationPayload
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("webhook body is not valid json: %v", err)
	}
	if sent.Invoice != "INV-001" || sent.PaymentProof != payload.PaymentProof {
		t.Fatalf("unexpected payload delivered: %+v", sent)
	}
}

func TestWebhookGateway_Send_ClassifiesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"The requested webhook is not registered"}`))
	}))
	defer srv.Close()

	gateway, err := NewWebhookGateway(srv.URL)
	if err != nil {
		t.Fatalf("NewWebhookGateway failed: %v", err)
	}

	err = gateway.Send(context.Background(), entities.ConfirmationPayload{Invoice: "INV-001"})
	if !errors.Is(err, interfaces.ErrWebhookNotConfigured) {
		t.Fatalf("expected ErrWebhookNotConfigured, got %v", err)
	}
}

func TestWebhookGateway_Send_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	gateway, err := NewWebhookGateway(srv.URL)
	if err != nil {
		t.Fatalf("NewWebhookGateway failed: %v", err)
	}
	srv.Close()

	err = gateway.Send(context.Background(), entities.ConfirmationPayload{Invoice: "INV-001"})
	if err == nil || !strings.Contains(err.Error(), "webhook unreachable") {
		t.Fatalf("expected unreachable error, got %v", err)
	}
}

func TestClassifyResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{
			name:   "webhook not registered",
			status: http.StatusNotFound,
			body:   `{"message":"The requested webhook \"inbound-invoices\" is not registered."}`,
			want:   interfaces.ErrWebhookNotConfigured,
		},
		{
			name:   "workflow in test mode",
			status: http.StatusNotFound,
			body:   `{"message":"cannot GET","hint":"The workflow must be active or in test mode with the execute button pressed"}`,
			want:   interfaces.ErrWebhookTestMode,
		},
		{
			name:   "plain not found",
			status: http.StatusNotFound,
			body:   `not found`,
			want:   interfaces.ErrWebhookNotFound,
		},
		{
			name:   "webhook server error",
			status: http.StatusInternalServerError,
			body:   `{"message":"Webhook processing failed"}`,
			want:   interfaces.ErrWebhookServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyResponse(tt.status, []byte(tt.body)); !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClassifyResponse_GenericFallback(t *testing.T) {
	err := ClassifyResponse(http.StatusBadGateway, []byte("upstream hiccup"))
	if err == nil || !strings.Contains(err.Error(), "webhook error: 502") {
		t.Fatalf("expected generic webhook error, got %v", err)
	}
	if !strings.Contains(err.Error(), "upstream hiccup") {
		t.Fatalf("expected body echoed in error, got %v", err)
	}
}
