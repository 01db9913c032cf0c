package shipment

// CreateRequest payload for POST /shipments. A nil ShippedAt leaves the
// shipment pending. ShippedAt is any timestamp literal Postgres accepts, with
// or without an offset; it is sent as text and parsed by the server.
// swagger:model CreateShipmentRequest
type CreateRequest struct {
	OrderID    int64   `json:"order_id"    binding:"required,gt=0" example:"1"`
	BoxID      int64   `json:"box_id"      binding:"required,gt=0" example:"1"`
	Carrier    *string `json:"carrier"                             example:"UPS"`
	TrackingNo *string `json:"tracking_no"                         example:"1Z999AA10123456784"`
	ShippedAt  *string `json:"shipped_at"                          example:"2024-03-01T10:00:00"`
}

// ShipRequest payload for PATCH /shipments/{id}/ship. Omitted ShippedAt means
// now; omitted TrackingNo keeps the stored value.
// swagger:model ShipRequest
type ShipRequest struct {
	TrackingNo *string `json:"tracking_no" example:"1Z999AA10123456784"`
	ShippedAt  *string `json:"shipped_at"  example:"2024-03-01T10:00:00"`
}
