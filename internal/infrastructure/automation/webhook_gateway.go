package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"konfirmasi_pembayaran/internal/domain/entities"
	"konfirmasi_pembayaran/internal/usecase/interfaces"
)

var ErrMissingWebhookURL = errors.New("missing CONFIRMATION_WEBHOOK_URL")

const requestTimeout = 30 * time.Second

// WebhookGateway posts confirmation payloads to the automation platform's
// inbound-invoices webhook.
//
// The platform answers 404 for several distinct conditions, so the response
// body is parsed to tell an unregistered webhook from a workflow left in test
// mode from a plain wrong URL.
type WebhookGateway struct {
	webhookURL string
	client     *http.Client
}

var _ interfaces.IConfirmationWebhook = (*WebhookGateway)(nil)

func NewWebhookGateway(webhookURL string) (*WebhookGateway, error) {
	if strings.TrimSpace(webhookURL) == "" {
		log.Printf("[confirmation][gateway] missing CONFIRMATION_WEBHOOK_URL")
		return nil, ErrMissingWebhookURL
	}
	return &WebhookGateway{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: requestTimeout},
	}, nil
}

type webhookErrorBody struct {
	Message string `json:"message"`
	Hint    string `json:"hint"`
}

func (g *WebhookGateway) Send(ctx context.Context, payload entities.ConfirmationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal confirmation payload: %w", err)
	}
	log.Printf("[confirmation][gateway] send start invoice=%s payload_len=%d", payload.Invoice, len(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[confirmation][gateway] send transport error invoice=%s err=%v", payload.Invoice, err)
		return fmt.Errorf("webhook unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		log.Printf("[confirmation][gateway] send success invoice=%s status=%d", payload.Invoice, resp.StatusCode)
		return nil
	}

	kind := ClassifyResponse(resp.StatusCode, respBody)
	log.Printf("[confirmation][gateway] send failed invoice=%s status=%d kind=%v", payload.Invoice, resp.StatusCode, kind)
	return kind
}

// ClassifyResponse maps a non-2xx webhook response to the webhook error
// vocabulary. The body may be empty or non-JSON; both fall back to the
// status-code-only classification.
func ClassifyResponse(status int, body []byte) error {
	var parsed webhookErrorBody
	_ = json.Unmarshal(body, &parsed)
	message := strings.ToLower(parsed.Message)
	hint := strings.ToLower(parsed.Hint)

	switch {
	case status == http.StatusNotFound && strings.Contains(message, "webhook") && strings.Contains(message, "not registered"):
		return interfaces.ErrWebhookNotConfigured
	case status == http.StatusNotFound && strings.Contains(hint, "test mode"):
		return interfaces.ErrWebhookTestMode
	case status == http.StatusNotFound:
		return interfaces.ErrWebhookNotFound
	case status == http.StatusInternalServerError && strings.Contains(message, "webhook"):
		return interfaces.ErrWebhookServerError
	default:
		return fmt.Errorf("webhook error: %d - %s", status, strings.TrimSpace(string(body)))
	}
}
