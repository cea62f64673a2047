package routes

import (
	"contractor_books/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChangeOrders = "/change-orders"
	PathInvoices     = "/invoices"
)

func addFinanceRoutes(rg *gin.RouterGroup, changeOrderHandler *handlers.ChangeOrderHandler, invoiceHandler *handlers.InvoiceHandler) {
	changeOrders := rg.Group(PathChangeOrders)
	{
		changeOrders.POST("", changeOrderHandler.CreateChangeOrder)
		// The approval surface is keyed by the bearer token, not a session.
		changeOrders.GET("/approve/:token", changeOrderHandler.GetApprovalPage)
		changeOrders.POST("/approve/:token", changeOrderHandler.RespondByToken)
		changeOrders.POST("/approve-simple/:id", changeOrderHandler.ApproveSimple)
		changeOrders.POST("/expire-sweep", changeOrderHandler.ExpireSweep)
		changeOrders.POST("/:id/retry-projection", changeOrderHandler.RetryProjection)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.POST("/:id/payments", invoiceHandler.AddPayment)
		invoices.GET("/:id/payments", invoiceHandler.ListPayments)
		invoices.POST("/:id/mark-paid", invoiceHandler.MarkAsPaid)
		invoices.POST("/:id/collect", invoiceHandler.CollectPayment)
	}
}
