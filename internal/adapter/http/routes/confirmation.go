package routes

import (
	"konfirmasi_pembayaran/internal/adapter/http/handlers"
	"konfirmasi_pembayaran/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
)

func addConfirmationRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, uploadHandler *handlers.UploadHandler, confirmationHandler *handlers.ConfirmationHandler) {
	// The invoice proxy takes the brunt of payment-link opens; tighter budget.
	rg.GET("/invoice", middleware.RateLimit(middleware.LimitInvoice, middleware.BurstInvoice), invoiceHandler.GetInvoice)
	rg.POST("/upload-image", uploadHandler.UploadImage)

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", confirmationHandler.StartSession)
		sessions.GET("/:session_id", confirmationHandler.GetSession)
		sessions.POST("/:session_id/destination", confirmationHandler.SelectDestination)
		sessions.POST("/:session_id/details", confirmationHandler.SubmitDetails)
		sessions.POST("/:session_id/proof", confirmationHandler.UploadProof)
		sessions.POST("/:session_id/submit", confirmationHandler.Submit)
		sessions.GET("/:session_id/receipt", confirmationHandler.Receipt)
	}
}
