package routes

import (
	"balanca_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts      = "/products"
	PathVendors       = "/vendors"
	PathVehicles      = "/vehicles"
	PathProductPrices = "/product-prices"
	PathTickets       = "/tickets"
)

func addWeighbridgeRoutes(rg *gin.RouterGroup, registryHandler *handlers.RegistryHandler, pricingHandler *handlers.PricingHandler, ticketHandler *handlers.TicketHandler) {
	rg.GET(PathProducts, registryHandler.ListProducts)
	rg.GET(PathVendors, registryHandler.ListVendors)
	rg.GET(PathVehicles, registryHandler.ListVehicles)

	prices := rg.Group(PathProductPrices)
	{
		prices.GET("", pricingHandler.ListPrices)
		prices.POST("", pricingHandler.UpsertPrice)
		prices.PUT("/:id", pricingHandler.UpdatePrice)
		prices.DELETE("/:id", pricingHandler.DeletePrice)
		prices.GET("/active/:productId", pricingHandler.ResolveActivePrice)
	}

	tickets := rg.Group(PathTickets)
	{
		tickets.GET("", ticketHandler.ListTickets)
		tickets.POST("", ticketHandler.CreateTicket)
		tickets.PATCH("/:id/approve", ticketHandler.ApproveTicket)
	}
}
