package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/stencil-orders/internal/docs"
	"github.com/MikeMC777/stencil-orders/internal/httpx"
	"github.com/MikeMC777/stencil-orders/internal/order"
	"github.com/MikeMC777/stencil-orders/internal/report"
	"github.com/MikeMC777/stencil-orders/internal/shipment"
)

type deps struct {
	Orders         order.Repository
	Shipments      shipment.Repository
	Reports        report.Repository
	Logger         *slog.Logger
	AdminTokenHash string
}

func newRouter(d deps) *gin.Engine {
	httpx.UseJSONFieldNames()
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(d.Logger))

	r.GET("/health/db", healthHandler(d.Reports))
	r.GET("/debug/seed-summary", seedSummaryHandler(d.Reports))

	r.POST("/orders", createOrderHandler(d.Orders))
	r.GET("/orders", listOrdersHandler(d.Orders))
	r.GET("/orders/shipped", listShippedHandler(d.Reports))
	r.GET("/orders/:id", getOrderHandler(d.Orders))
	r.POST("/order_items", addItemHandler(d.Orders))

	r.POST("/shipments", createShipmentHandler(d.Shipments))
	r.PATCH("/shipments/:id/ship", markShippedHandler(d.Shipments))

	r.GET("/reports/weekly", weeklyHandler(d.Reports))

	admin := r.Group("/admin", httpx.AdminAuth(d.AdminTokenHash))
	admin.POST("/refresh-weekly-mv", refreshWeeklyHandler(d.Reports))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}
