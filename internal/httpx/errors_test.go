package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestError_StatusByKind(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Validation(errors.New("EOF")), http.StatusBadRequest},
		{NotFound("order not found"), http.StatusNotFound},
		{Store("create_order", errors.New("boom")), http.StatusBadRequest},
		{Internal("refresh", errors.New("boom")), http.StatusInternalServerError},
		{Unauthorized("admin token required"), http.StatusUnauthorized},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.err.Status(), tc.err.Kind.String())
	}
}

func TestError_ResponseEmbedsDriverMessage(t *testing.T) {
	err := Store("add_order_item", errors.New(`violates foreign key constraint "order_items_order_id_fkey"`))
	require.Equal(t, `add_order_item failed: violates foreign key constraint "order_items_order_id_fkey"`, err.Response().Error)

	err = Internal("refresh", errors.New("must be owner of materialized view"))
	require.Equal(t, "refresh failed: must be owner of materialized view", err.Response().Error)

	require.Equal(t, "shipment not found", NotFound("shipment not found").Response().Error)
}

type qtyPayload struct {
	Qty            int    `json:"qty"              binding:"required,gt=0"`
	UnitPriceCents *int64 `json:"unit_price_cents" binding:"required,gte=0"`
}

func TestValidation_ReportsJSONFieldNames(t *testing.T) {
	UseJSONFieldNames()

	r := gin.New()
	r.POST("/items", func(c *gin.Context) {
		var p qtyPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			Abort(c, Validation(err))
			return
		}
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", stringsReader(`{"qty":-1,"unit_price_cents":-5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "validation failed", body.Error)
	require.ElementsMatch(t, []FieldError{
		{Field: "qty", Rule: "gt", Param: "0"},
		{Field: "unit_price_cents", Rule: "gte", Param: "0"},
	}, body.Fields)
}

func TestValidation_MalformedJSON(t *testing.T) {
	r := gin.New()
	r.POST("/items", func(c *gin.Context) {
		var p qtyPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			Abort(c, Validation(err))
			return
		}
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", stringsReader(`{"qty":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid request")
}

func TestAbort_PlainErrorIsInternal(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { Abort(c, errors.New("connection refused")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"request failed: connection refused"}`, w.Body.String())
}
