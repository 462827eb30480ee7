package routes

import (
	"log"
	"os"
	"strconv"

	_ "konfirmasi_pembayaran/docs" // This will be auto-generated
	"konfirmasi_pembayaran/internal/adapter/http/handlers"
	"konfirmasi_pembayaran/internal/adapter/http/middleware"
	repository2 "konfirmasi_pembayaran/internal/adapter/persistence/repository"
	"konfirmasi_pembayaran/internal/infrastructure/automation"
	"konfirmasi_pembayaran/internal/infrastructure/database"
	"konfirmasi_pembayaran/internal/infrastructure/imagehost"
	"konfirmasi_pembayaran/internal/infrastructure/orders"
	"konfirmasi_pembayaran/internal/usecase"
	"konfirmasi_pembayaran/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	sessionRepo := repository2.NewSessionDynamoRepository(ddb)
	confirmationRepo := repository2.NewConfirmationDynamoRepository(ddb)

	var invoiceGateway interfaces.IInvoiceGateway
	orderGateway, err := orders.NewOrderAPIGateway(os.Getenv("ORDER_API_BASE_URL"), os.Getenv("ORDER_API_TOKEN"))
	if err != nil {
		log.Printf("Order API gateway not configured: %v", err)
	} else {
		invoiceGateway = orderGateway
	}

	var imageStorage interfaces.IImageStorage
	imgbbGateway, err := imagehost.NewImgbbGateway(os.Getenv("IMGBB_API_KEY"))
	if err != nil {
		log.Printf("Image host gateway not configured: %v", err)
	} else {
		imageStorage = imgbbGateway
	}

	var webhook interfaces.IConfirmationWebhook
	webhookGateway, err := automation.NewWebhookGateway(os.Getenv("CONFIRMATION_WEBHOOK_URL"))
	if err != nil {
		log.Printf("Confirmation webhook not configured: %v", err)
	} else {
		webhook = webhookGateway
	}

	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceGateway)
	uploadUseCase := usecase.NewUploadUseCase(imageStorage)
	confirmationUseCase := usecase.NewConfirmationUseCase(sessionRepo, confirmationRepo, invoiceUseCase, uploadUseCase, webhook)

	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	uploadHandler := handlers.NewUploadHandler(uploadUseCase)
	confirmationHandler := handlers.NewConfirmationHandler(confirmationUseCase)

	// Rute publik
	api := router.Group("/api")
	addPingRoutes(api)
	addConfirmationRoutes(api, invoiceHandler, uploadHandler, confirmationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
	router.Use(middleware.RateLimit(middleware.LimitGeneral, middleware.BurstGeneral))
}

// corsConfig allows the storefront origin to call the API straight from the
// browser. ALLOWED_ORIGIN unset falls back to allow-all for local dev.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if origin := os.Getenv("ALLOWED_ORIGIN"); origin != "" {
		cfg.AllowOrigins = []string{origin}
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return cfg
}
