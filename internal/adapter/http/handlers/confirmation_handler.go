package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"konfirmasi_pembayaran/internal/adapter/http/dto/request"
	"konfirmasi_pembayaran/internal/adapter/http/dto/response"
	"konfirmasi_pembayaran/internal/usecase"
	"konfirmasi_pembayaran/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// ConfirmationHandler exposes the confirmation-session pipeline over HTTP.

type ConfirmationHandler struct {
	usecase usecase.IConfirmationUseCase
}

func NewConfirmationHandler(uc usecase.IConfirmationUseCase) *ConfirmationHandler {
	return &ConfirmationHandler{usecase: uc}
}

// StartSession handles POST /api/sessions.
func (h *ConfirmationHandler) StartSession(c *gin.Context) {
	var req request.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invoice required"})
		return
	}
	log.Printf("[confirmation][handler] start-session invoice=%s", req.Invoice)

	s, err := h.usecase.StartSession(c.Request.Context(), req.Invoice)
	if err != nil {
		log.Printf("[confirmation][handler] start-session failed invoice=%s err=%v", req.Invoice, err)
		status, body := mapFlowError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

// GetSession handles GET /api/sessions/:session_id.
func (h *ConfirmationHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		status, body := mapFlowError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// SelectDestination handles POST /api/sessions/:session_id/destination.
func (h *ConfirmationHandler) SelectDestination(c *gin.Context) {
	sessionID := c.Param("session_id")
	var req request.SelectDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewFlowError("INVALID_DESTINATION_BANK"))
		return
	}
	log.Printf("[confirmation][handler] select-destination session=%s bank=%s", sessionID, req.Bank)

	s, err := h.usecase.SelectDestination(c.Request.Context(), sessionID, req.Bank)
	if err != nil {
		log.Printf("[confirmation][handler] select-destination failed session=%s err=%v", sessionID, err)
		status, body := mapFlowError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// SubmitDetails handles POST /api/sessions/:session_id/details.
func (h *ConfirmationHandler) SubmitDetails(c *gin.Context) {
	sessionID := c.Param("session_id")
	var req request.TransferDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewFlowError("INCOMPLETE_DETAILS"))
		return
	}
	log.Printf("[confirmation][handler] submit-details session=%s bank=%s", sessionID, req.SenderBank)

	s, verdict, err := h.usecase.SubmitDetails(c.Request.Context(), sessionID, req.ToEntity())
	if err != nil {
		log.Printf("[confirmation][handler] submit-details failed session=%s err=%v", sessionID, err)
		status, body := mapFlowError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, response.SubmitDetailsResponse{
		Session: response.FromSession(s),
		Verdict: verdict,
	})
}

// UploadProof handles POST /api/sessions/:session_id/proof. The multipart
// field `image` carries the proof file itself.
func (h *ConfirmationHandler) UploadProof(c *gin.Context) {
	sessionID := c.Param("session_id")

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.UploadImageError{Success: false, Error: "No image provided"})
		return
	}
	log.Printf("[confirmation][handler] upload-proof session=%s file=%s size=%d", sessionID, header.Filename, header.Size)

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.UploadImageError{Success: false, Error: "No image provided"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, usecase.MaxProofSizeBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.UploadImageError{Success: false, Error: "Failed to upload image"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	s, err := h.usecase.UploadProof(c.Request.Context(), sessionID, header.Filename, contentType, data)
	if err != nil {
		log.Printf("[confirmation][handler] upload-proof failed session=%s err=%v", sessionID, err)
		status, body := mapFlowError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Submit handles POST /api/sessions/:session_id/submit.
func (h *ConfirmationHandler) Submit(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[confirmation][handler] submit session=%s", sessionID)

	s, err := h.usecase.Submit(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[confirmation][handler] submit failed session=%s err=%v", sessionID, err)
		status, body := mapFlowError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Receipt handles GET /api/sessions/:session_id/receipt.
func (h *ConfirmationHandler) Receipt(c *gin.Context) {
	s, rec, err := h.usecase.Receipt(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		status, body := mapFlowError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, response.ReceiptFromSession(s, rec))
}

// mapFlowError turns pipeline and collaborator errors into a status plus the
// localized error body. Webhook and upload failures answer 502 because the
// fault sits with a collaborator, not this service.
func mapFlowError(err error) (int, response.FlowError) {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrSessionNotFound):
		return http.StatusNotFound, response.NewFlowError("SESSION_NOT_FOUND")
	case errors.Is(err, usecase.ErrInvoiceRequired):
		return http.StatusBadRequest, response.FlowError{Error: "invoice required"}
	case errors.Is(err, interfaces.ErrInvoiceRateLimited):
		return http.StatusTooManyRequests, response.NewFlowError("RATE_LIMIT_EXCEEDED")
	case errors.Is(err, interfaces.ErrInvoiceNotFound):
		return http.StatusNotFound, response.NewFlowError("INVOICE_NOT_FOUND")
	case errors.Is(err, interfaces.ErrInvoiceUnauthorized):
		return http.StatusUnauthorized, response.FlowError{Error: "UNAUTHORIZED"}
	case errors.Is(err, interfaces.ErrInvoiceInvalidResponse):
		return http.StatusInternalServerError, response.FlowError{Error: "INVALID_RESPONSE"}
	case errors.Is(err, interfaces.ErrInvoiceNetwork):
		return http.StatusServiceUnavailable, response.FlowError{Error: "NETWORK_ERROR"}
	case errors.Is(err, interfaces.ErrInvoiceServerError):
		return http.StatusInternalServerError, response.NewFlowError("SERVER_ERROR")
	case errors.Is(err, usecase.ErrInvalidDestinationBank):
		return http.StatusBadRequest, response.NewFlowError("INVALID_DESTINATION_BANK")
	case errors.Is(err, usecase.ErrIncompleteDetails):
		return http.StatusBadRequest, response.NewFlowError("INCOMPLETE_DETAILS")
	case errors.Is(err, usecase.ErrInvalidSessionState):
		return http.StatusConflict, response.NewFlowError("INVALID_SESSION_STATE")
	case errors.Is(err, usecase.ErrUploadInFlight):
		return http.StatusConflict, response.NewFlowError("UPLOAD_IN_FLIGHT")
	case errors.Is(err, usecase.ErrProofEmpty):
		return http.StatusBadRequest, response.NewFlowError("PROOF_EMPTY")
	case errors.Is(err, usecase.ErrProofTooLarge):
		return http.StatusBadRequest, response.NewFlowError("PROOF_TOO_LARGE")
	case errors.Is(err, usecase.ErrProofBadFormat):
		return http.StatusBadRequest, response.NewFlowError("PROOF_BAD_FORMAT")
	case errors.Is(err, interfaces.ErrUploadRejected):
		return http.StatusBadGateway, response.NewFlowError("UPLOAD_REJECTED")
	case errors.Is(err, interfaces.ErrUploadGatewayFailure):
		return http.StatusBadGateway, response.NewFlowError("UPLOAD_FAILED")
	case errors.Is(err, usecase.ErrSubmitPreconditions):
		return http.StatusBadRequest, response.NewFlowError("SUBMIT_PRECONDITIONS")
	case errors.Is(err, interfaces.ErrWebhookNotConfigured):
		return http.StatusBadGateway, response.NewFlowError("WEBHOOK_NOT_CONFIGURED")
	case errors.Is(err, interfaces.ErrWebhookTestMode):
		return http.StatusBadGateway, response.NewFlowError("WEBHOOK_TEST_MODE")
	case errors.Is(err, interfaces.ErrWebhookNotFound):
		return http.StatusBadGateway, response.NewFlowError("WEBHOOK_NOT_FOUND")
	case errors.Is(err, interfaces.ErrWebhookServerError):
		return http.StatusBadGateway, response.NewFlowError("WEBHOOK_SERVER_ERROR")
	case errors.Is(err, usecase.ErrReceiptNotReady):
		return http.StatusConflict, response.NewFlowError("RECEIPT_NOT_READY")
	default:
		if strings.Contains(err.Error(), "webhook error:") {
			return http.StatusBadGateway, response.NewFlowError("WEBHOOK_ERROR")
		}
		return http.StatusInternalServerError, response.FlowError{Error: "INTERNAL_ERROR", Message: response.MessageForCode("SERVER_ERROR")}
	}
}
