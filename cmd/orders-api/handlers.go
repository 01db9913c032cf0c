package main

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/MikeMC777/stencil-orders/internal/httpx"
	"github.com/MikeMC777/stencil-orders/internal/order"
	"github.com/MikeMC777/stencil-orders/internal/report"
	"github.com/MikeMC777/stencil-orders/internal/shipment"
)

// HealthResponse is the body of GET /health/db.
type HealthResponse struct {
	DBOK  bool   `json:"db_ok"`
	Error string `json:"error,omitempty"`
}

// OKResponse is returned by admin actions.
type OKResponse struct {
	OK bool `json:"ok"`
}

// bindBody decodes an optional JSON body; an empty body counts as {}.
func bindBody(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if errors.Is(err, io.EOF) {
		return binding.Validator.ValidateStruct(dst)
	}
	return err
}

func pathID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, httpx.InvalidParam("id", raw)
	}
	return id, nil
}

// healthHandler godoc
// @Summary  Database health check
// @Tags     health
// @Produce  json
// @Success  200 {object} HealthResponse
// @Failure  500 {object} HealthResponse
// @Router   /health/db [get]
func healthHandler(repo report.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Ping(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, HealthResponse{DBOK: false, Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, HealthResponse{DBOK: ok})
	}
}

// seedSummaryHandler godoc
// @Summary      Row counts per table
// @Description  Returns products, boxes, product_box, inventory_items and icr_rules, followed by the orders, order_items and shipments counts.
// @Tags         debug
// @Produce      json
// @Success      200 {object} map[string]int
// @Failure      500 {object} httpx.ErrorResponse
// @Router       /debug/seed-summary [get]
func seedSummaryHandler(repo report.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, err := repo.SeedSummary(c.Request.Context())
		if err != nil {
			httpx.Abort(c, httpx.Internal("seed_summary", err))
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

// createOrderHandler godoc
// @Summary  Create order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body     order.CreateOrderRequest true "order"
// @Success  201  {object} order.Order
// @Failure  400  {object} httpx.ErrorResponse
// @Router   /orders [post]
func createOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CreateOrderRequest
		if err := bindBody(c, &in); err != nil {
			httpx.Abort(c, httpx.Validation(err))
			return
		}
		o, err := repo.Create(c.Request.Context(), in)
		if err != nil {
			httpx.Abort(c, httpx.Store("create_order", err))
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

// getOrderHandler godoc
// @Summary  Get order by id
// @Tags     orders
// @Produce  json
// @Param    id  path     int true "order id"
// @Success  200 {object} order.Order
// @Failure  400 {object} httpx.ErrorResponse
// @Failure  404 {object} httpx.ErrorResponse
// @Router   /orders/{id} [get]
func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		o, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, order.ErrNotFound) {
			httpx.Abort(c, httpx.NotFound(order.ErrNotFound.Error()))
			return
		}
		if err != nil {
			httpx.Abort(c, httpx.Internal("get_order", err))
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// listOrdersHandler godoc
// @Summary  List orders, newest first
// @Tags     orders
// @Produce  json
// @Param    limit  query    int false "page size"  default(50) minimum(1) maximum(500)
// @Param    offset query    int false "rows to skip" default(0) minimum(0)
// @Success  200    {array}  object
// @Failure  400    {object} httpx.ErrorResponse
// @Failure  500    {object} httpx.ErrorResponse
// @Router   /orders [get]
func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q order.ListQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			httpx.Abort(c, httpx.Validation(err))
			return
		}
		out, err := repo.List(c.Request.Context(), q.Limit, q.Offset)
		if err != nil {
			httpx.Abort(c, httpx.Internal("list_orders", err))
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// listShippedHandler godoc
// @Summary  List fully shipped orders
// @Tags     orders
// @Produce  json
// @Param    limit  query    int false "page size"  default(100) minimum(1) maximum(500)
// @Param    offset query    int false "rows to skip" default(0) minimum(0)
// @Success  200    {array}  object
// @Failure  400    {object} httpx.ErrorResponse
// @Failure  500    {object} httpx.ErrorResponse
// @Router   /orders/shipped [get]
func listShippedHandler(repo report.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q report.ShippedQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			httpx.Abort(c, httpx.Validation(err))
			return
		}
		rows, err := repo.ShippedOrders(c.Request.Context(), q.Limit, q.Offset)
		if err != nil {
			httpx.Abort(c, httpx.Internal("list_shipped_orders", err))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// addItemHandler godoc
// @Summary  Add order item
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body     order.CreateItemRequest true "item"
// @Success  201  {object} object
// @Failure  400  {object} httpx.ErrorResponse
// @Router   /order_items [post]
func addItemHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CreateItemRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Abort(c, httpx.Validation(err))
			return
		}
		row, err := repo.AddItem(c.Request.Context(), in)
		if err != nil {
			httpx.Abort(c, httpx.Store("add_order_item", err))
			return
		}
		c.JSON(http.StatusCreated, row)
	}
}

// createShipmentHandler godoc
// @Summary  Create shipment
// @Tags     shipments
// @Accept   json
// @Produce  json
// @Param    body body     shipment.CreateRequest true "shipment"
// @Success  201  {object} object
// @Failure  400  {object} httpx.ErrorResponse
// @Router   /shipments [post]
func createShipmentHandler(repo shipment.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in shipment.CreateRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Abort(c, httpx.Validation(err))
			return
		}
		row, err := repo.Create(c.Request.Context(), in)
		if err != nil {
			httpx.Abort(c, httpx.Store("create_shipment", err))
			return
		}
		c.JSON(http.StatusCreated, row)
	}
}

// markShippedHandler godoc
// @Summary  Mark shipment shipped
// @Tags     shipments
// @Accept   json
// @Produce  json
// @Param    id   path     int                 true  "shipment id"
// @Param    body body     shipment.ShipRequest false "tracking number and ship time, both optional"
// @Success  200  {object} object
// @Failure  400  {object} httpx.ErrorResponse
// @Failure  404  {object} httpx.ErrorResponse
// @Router   /shipments/{id}/ship [patch]
func markShippedHandler(repo shipment.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		var in shipment.ShipRequest
		if err := bindBody(c, &in); err != nil {
			httpx.Abort(c, httpx.Validation(err))
			return
		}
		row, err := repo.MarkShipped(c.Request.Context(), id, in)
		if errors.Is(err, shipment.ErrNotFound) {
			httpx.Abort(c, httpx.NotFound(shipment.ErrNotFound.Error()))
			return
		}
		if err != nil {
			httpx.Abort(c, httpx.Store("mark_shipment_shipped", err))
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

// weeklyHandler godoc
// @Summary  Weekly order tracking, last 52 weeks
// @Tags     reports
// @Produce  json
// @Success  200 {array}  object
// @Failure  500 {object} httpx.ErrorResponse
// @Router   /reports/weekly [get]
func weeklyHandler(repo report.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := repo.Weekly(c.Request.Context())
		if err != nil {
			httpx.Abort(c, httpx.Internal("weekly_report", err))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// refreshWeeklyHandler godoc
// @Summary   Refresh weekly materialized view
// @Tags      admin
// @Produce   json
// @Security  AdminToken
// @Success   200 {object} OKResponse
// @Failure   401 {object} httpx.ErrorResponse
// @Failure   500 {object} httpx.ErrorResponse
// @Router    /admin/refresh-weekly-mv [post]
func refreshWeeklyHandler(repo report.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.RefreshWeekly(c.Request.Context()); err != nil {
			httpx.Abort(c, httpx.Internal("refresh", err))
			return
		}
		c.JSON(http.StatusOK, OKResponse{OK: true})
	}
}
