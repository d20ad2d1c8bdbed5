package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses. Orders start pending; later transitions are driven by
// fulfillment, not by the storefront.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

const (
	PaymentInstapay       = "instapay"
	PaymentCashOnDelivery = "cod"
)

const (
	ShippingRegionCairoGiza = "cairo-giza"
	ShippingRegionOther     = "other"
)

type Order struct {
	ID                string      `json:"id" gorm:"type:char(36);primaryKey"`
	OrderNumber       string      `json:"orderNumber" gorm:"size:12;uniqueIndex"`
	CustomerFullName  string      `json:"customerFullName"`
	CustomerEmail     string      `json:"customerEmail"`
	CustomerPhone     string      `json:"customerPhone"`
	DeliveryCountry   string      `json:"deliveryCountry"`
	DeliveryCity      string      `json:"deliveryCity"`
	DeliveryStreet    string      `json:"deliveryStreet"`
	DeliveryBuilding  string      `json:"deliveryBuilding"`
	DeliveryApartment *string     `json:"deliveryApartment"`
	DeliveryNotes     *string     `json:"deliveryNotes"`
	Subtotal          float64     `json:"subtotal"`
	ShippingFee       float64     `json:"shippingFee"`
	Discount          float64     `json:"discount"`
	Total             float64     `json:"total"`
	PaymentMethod     string      `json:"paymentMethod"`
	Status            string      `json:"status"`
	Source            string      `json:"source"`
	SubscribeToOffers bool        `json:"subscribeToOffers"`
	UserID            *string     `json:"userId"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
	OrderItems        []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

type OrderItem struct {
	gorm.Model
	OrderID      string  `json:"orderId" gorm:"type:char(36);index"`
	ProductID    int     `json:"productId"`
	ProductName  string  `json:"productName"`
	VariantSize  *string `json:"variantSize"`
	VariantColor *string `json:"variantColor"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
}
