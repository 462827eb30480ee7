package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"konfirmasi_pembayaran/internal/adapter/http/handlers/mocks"
	"konfirmasi_pembayaran/internal/domain/entities"
	"konfirmasi_pembayaran/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIInvoiceUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/api/invoice", NewInvoiceHandler(uc).GetInvoice)
		return r
	}

	t.Run("missing parameter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIInvoiceUseCase(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/api/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("body not json: %v", err)
		}
		if body["error"] != "invoice required" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("upstream body passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newRouter(uc)

		raw := json.RawMessage(`{"data":{"invoice":"INV-001","total":150000}}`)
		uc.EXPECT().Fetch(gomock.Any(), "INV-001").Return(entities.Invoice{Invoice: "INV-001"}, raw, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/invoice?invoice=INV-001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != string(raw) {
			t.Fatalf("body not passed through: %s", w.Body.String())
		}
	})

	t.Run("rate limit keeps 429", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Fetch(gomock.Any(), "INV-001").Return(entities.Invoice{}, nil, interfaces.ErrInvoiceRateLimited)

		req := httptest.NewRequest(http.MethodGet, "/api/invoice?invoice=INV-001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "RATE_LIMIT_EXCEEDED" {
			t.Fatalf("unexpected code: %v", body)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Fetch(gomock.Any(), "INV-404").Return(entities.Invoice{}, nil, interfaces.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/invoice?invoice=INV-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("non-json upstream maps to 500 INVALID_RESPONSE", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Fetch(gomock.Any(), "INV-001").Return(entities.Invoice{}, nil, interfaces.ErrInvoiceInvalidResponse)

		req := httptest.NewRequest(http.MethodGet, "/api/invoice?invoice=INV-001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "INVALID_RESPONSE" {
			t.Fatalf("unexpected code: %v", body)
		}
	})
}
