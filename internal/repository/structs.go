package repository

import (
	"errors"
	"time"
)

var ErrStoreUnavailable = errors.New("order store unavailable")

// Order is a read-only projection of an order document. This service never
// writes order documents; their lifecycle is owned by the fulfillment system.
type Order struct {
	ID              string           `bson:"_id" json:"id"`
	ClientName      string           `bson:"client_name" json:"client_name"`
	Code            int              `bson:"code" json:"code"`
	Status          string           `bson:"status" json:"status"`
	CreatedAt       time.Time        `bson:"created_at" json:"created_at"`
	ClosedAt        *time.Time       `bson:"closed_at,omitempty" json:"closed_at,omitempty"`
	ShippingAddress *ShippingAddress `bson:"shipping_address,omitempty" json:"shipping_address,omitempty"`
	Items           []Item           `bson:"items" json:"items"`
	Shipments       []Shipment       `bson:"shipments" json:"shipments"`
}

type ShippingAddress struct {
	Verified    bool   `bson:"verified" json:"verified"`
	Name        string `bson:"name" json:"name"`
	Company     string `bson:"company,omitempty" json:"company,omitempty"`
	Address1    string `bson:"address1" json:"address1"`
	Address2    string `bson:"address2,omitempty" json:"address2,omitempty"`
	City        string `bson:"city" json:"city"`
	State       string `bson:"state" json:"state"`
	StateCode   string `bson:"state_code" json:"state_code"`
	Country     string `bson:"country" json:"country"`
	CountryCode string `bson:"country_code" json:"country_code"`
	Zip         string `bson:"zip" json:"zip"`
}

type Item struct {
	SKU          string `bson:"sku" json:"sku"`
	Name         string `bson:"name" json:"name"`
	TotalQty     int    `bson:"total_qty" json:"total_qty"`
	RemainingQty int    `bson:"remaining_qty" json:"remaining_qty"`
}

type Shipment struct {
	ShipmentID     string `bson:"shipment_id" json:"shipment_id"`
	Carrier        string `bson:"carrier" json:"carrier"`
	Service        string `bson:"service" json:"service"`
	TrackingNumber string `bson:"tracking_number" json:"tracking_number"`
}
