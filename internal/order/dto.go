package order

// CreateOrderRequest payload for POST /orders. Status defaults to draft when
// the key is absent or null.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	Status *Status `json:"status" binding:"omitempty,oneof=draft paid fulfilled cancelled" example:"paid"`
	Date   *string `json:"date"   binding:"omitempty,datetime=2006-01-02"                 example:"2024-01-01"`
}

// StatusOrDefault returns the requested status, or draft when omitted. An
// explicit "" never gets here: binding rejects it.
func (r CreateOrderRequest) StatusOrDefault() Status {
	if r.Status == nil {
		return StatusDraft
	}
	return *r.Status
}

// CreateItemRequest payload for POST /order_items.
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	OrderID        int64   `json:"order_id"         binding:"required,gt=0"  example:"1"`
	ProductID      int64   `json:"product_id"       binding:"required,gt=0"  example:"3"`
	Qty            int     `json:"qty"              binding:"required,gt=0"  example:"2"`
	UnitPriceCents *int64  `json:"unit_price_cents" binding:"required,gte=0" example:"1299"`
	ShippingNote   *string `json:"shipping_note"`
	ProofSent      *string `json:"proof_sent"`
}

// ListQuery is the paging window for GET /orders.
type ListQuery struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}
