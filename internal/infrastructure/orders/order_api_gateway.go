package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"konfirmasi_pembayaran/internal/domain/entities"
	"konfirmasi_pembayaran/internal/usecase/interfaces"
)

var ErrMissingOrderAPIBaseURL = errors.New("missing ORDER_API_BASE_URL")

const defaultRequestTimeout = 30 * time.Second

// OrderAPIGateway talks to the remote order service that owns invoices.
//
// Upstream contract: GET {base}/api/v1/cms/orders/detail?invoice=<number>
// with a bearer token, responding {"data": {...invoice...}}. Every upstream
// failure is normalized to the interfaces.ErrInvoice* vocabulary before it
// leaves this package.
type OrderAPIGateway struct {
	baseURL string
	token   string
	client  *http.Client
}

var _ interfaces.IInvoiceGateway = (*OrderAPIGateway)(nil)

func NewOrderAPIGateway(baseURL, token string) (*OrderAPIGateway, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[invoice][gateway] missing ORDER_API_BASE_URL")
		return nil, ErrMissingOrderAPIBaseURL
	}

	return &OrderAPIGateway{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

type invoiceEnvelope struct {
	Data entities.Invoice `json:"data"`
}

func (g *OrderAPIGateway) FetchInvoice(ctx context.Context, invoiceNumber string) (entities.Invoice, json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/api/v1/cms/orders/detail?invoice=%s", g.baseURL, url.QueryEscape(invoiceNumber))
	log.Printf("[invoice][gateway] fetch start invoice=%s", invoiceNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Invoice{}, nil, fmt.Errorf("%w: %v", interfaces.ErrInvoiceNetwork, err)
	}
	req.Header.Set("accept", "application/json")
	if g.token != "" {
		req.Header.Set("Authorization", g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[invoice][gateway] fetch transport error invoice=%s err=%v", invoiceNumber, err)
		return entities.Invoice{}, nil, fmt.Errorf("%w: %v", interfaces.ErrInvoiceNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[invoice][gateway] fetch read error invoice=%s err=%v", invoiceNumber, err)
		return entities.Invoice{}, nil, fmt.Errorf("%w: %v", interfaces.ErrInvoiceNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := mapStatus(resp.StatusCode)
		log.Printf("[invoice][gateway] fetch failed invoice=%s status=%d kind=%v", invoiceNumber, resp.StatusCode, kind)
		return entities.Invoice{}, nil, fmt.Errorf("%w: upstream status %d", kind, resp.StatusCode)
	}

	if !isJSONResponse(resp.Header.Get("Content-Type"), body) {
		log.Printf("[invoice][gateway] fetch non-json body invoice=%s content_type=%q", invoiceNumber, resp.Header.Get("Content-Type"))
		return entities.Invoice{}, nil, interfaces.ErrInvoiceInvalidResponse
	}

	var envelope invoiceEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Printf("[invoice][gateway] fetch unmarshal failed invoice=%s err=%v", invoiceNumber, err)
		return entities.Invoice{}, nil, fmt.Errorf("%w: %v", interfaces.ErrInvoiceInvalidResponse, err)
	}

	log.Printf("[invoice][gateway] fetch success invoice=%s total=%d products=%d", invoiceNumber, envelope.Data.Total, len(envelope.Data.Products))
	return envelope.Data, json.RawMessage(body), nil
}

func mapStatus(status int) error {
	switch {
	case status == http.StatusTooManyRequests:
		return interfaces.ErrInvoiceRateLimited
	case status == http.StatusNotFound:
		return interfaces.ErrInvoiceNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return interfaces.ErrInvoiceUnauthorized
	case status >= 500:
		return interfaces.ErrInvoiceServerError
	default:
		return interfaces.ErrInvoiceServerError
	}
}

func isJSONResponse(contentType string, body []byte) bool {
	if strings.Contains(strings.ToLower(contentType), "application/json") {
		return true
	}
	return json.Valid(body)
}
