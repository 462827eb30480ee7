package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"konfirmasi_pembayaran/internal/usecase"
	"konfirmasi_pembayaran/internal/usecase/interfaces"
	"konfirmasi_pembayaran/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler proxies invoice lookups to the order service so the
// storefront never talks to it directly.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// GetInvoice proxies GET /api/invoice?invoice= to the order service and
// passes the upstream body through on success.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceParam := strings.TrimSpace(c.Query("invoice"))
	if invoiceParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invoice required"})
		return
	}
	log.Printf("[invoice][handler] fetch start invoice=%s", invoiceParam)

	_, raw, err := h.usecase.Fetch(c.Request.Context(), invoiceParam)
	if err != nil {
		log.Printf("[invoice][handler] fetch failed invoice=%s err=%v", invoiceParam, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Passthrough: the upstream body goes to the client untouched.
	c.Data(http.StatusOK, "application/json", raw)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvoiceRequired):
		return pkg.NewDomainErrorSimple("invoice required", "", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrInvoiceRateLimited):
		return pkg.NewDomainErrorSimple("RATE_LIMIT_EXCEEDED", "", http.StatusTooManyRequests)
	case errors.Is(err, interfaces.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrInvoiceUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrInvoiceInvalidResponse):
		return pkg.NewDomainErrorSimple("INVALID_RESPONSE", "", http.StatusInternalServerError)
	case errors.Is(err, interfaces.ErrInvoiceNetwork):
		return pkg.NewDomainErrorSimple("NETWORK_ERROR", "", http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrInvoiceServerError):
		return pkg.NewDomainErrorSimple("SERVER_ERROR", "", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("UNKNOWN_ERROR", "", err, http.StatusInternalServerError)
	}
}
