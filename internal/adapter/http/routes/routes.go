package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "contractor_books/docs" // swag-generated
	"contractor_books/internal/adapter/http/handlers"
	repository2 "contractor_books/internal/adapter/persistence/repository"
	"contractor_books/internal/infrastructure/database"
	"contractor_books/internal/infrastructure/notifications"
	"contractor_books/internal/infrastructure/payments"
	"contractor_books/internal/usecase"
	"contractor_books/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

const defaultApprovalExpiryDays = 7

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

	changeOrderRepo := repository2.NewChangeOrderDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var notifier interfaces.INotificationPort
	emailNotifier, err := notifications.NewEmailNotifierFromEnv()
	if err != nil {
		log.Printf("Email notifier not configured: %v", err)
	} else {
		notifier = emailNotifier
	}

	tokens := usecase.NewApprovalTokenIssuer(getenvDefault("APPROVAL_BASE_URL", "http://localhost:8080"))
	budgetUseCase := usecase.NewProjectBudgetUseCase(projectRepo)
	changeOrderUseCase := usecase.NewChangeOrderUseCase(changeOrderRepo, budgetUseCase, notifier, tokens, approvalHorizonFromEnv())
	invoiceUseCase := usecase.NewInvoiceLedgerUseCase(invoiceRepo, paymentRepo, paymentGateway)

	changeOrderHandler := handlers.NewChangeOrderHandler(changeOrderUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFinanceRoutes(v1, changeOrderHandler, invoiceHandler)

	startExpireSweepTicker(changeOrderUseCase)
}

// approvalHorizonFromEnv resolves the single approval-window policy value.
// The legacy system carried two divergent horizons (7 days in the workflow,
// 30 in the authoring form); APPROVAL_EXPIRY_DAYS is the one knob now.
func approvalHorizonFromEnv() time.Duration {
	days := defaultApprovalExpiryDays
	if v := os.Getenv("APPROVAL_EXPIRY_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		} else {
			log.Printf("invalid APPROVAL_EXPIRY_DAYS=%q, using default %d", v, defaultApprovalExpiryDays)
		}
	}
	return time.Duration(days) * 24 * time.Hour
}

// startExpireSweepTicker runs the expiration sweep on a timer when
// EXPIRE_SWEEP_INTERVAL_MINUTES is set. The sweep is idempotent and each
// expire write is conditional, so overlap with the admin endpoint is safe.
func startExpireSweepTicker(uc usecase.IChangeOrderUseCase) {
	v := os.Getenv("EXPIRE_SWEEP_INTERVAL_MINUTES")
	if v == "" {
		return
	}
	minutes, err := strconv.Atoi(v)
	if err != nil || minutes <= 0 {
		log.Printf("invalid EXPIRE_SWEEP_INTERVAL_MINUTES=%q, sweep ticker disabled", v)
		return
	}

	go func() {
		ticker := time.NewTicker(time.Duration(minutes) * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := uc.ExpireSweep(context.Background(), time.Now().UTC()); err != nil {
				log.Printf("scheduled expire sweep failed: %v", err)
			}
		}
	}()
	log.Printf("expire sweep ticker started interval_minutes=%d", minutes)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
