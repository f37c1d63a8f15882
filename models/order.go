package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment methods and statuses. The strings are part of the API contract,
// including case.
const (
	PaymentCashOnDelivery = "cash_on_delivery"
	PaymentOnline         = "online"

	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

// Delivery statuses. "Out for delivery" keeps its spacing on the wire.
const (
	DeliveryPending        = "Pending"
	DeliveryConfirmed      = "Confirmed"
	DeliveryOutForDelivery = "Out for delivery"
	DeliveryDelivered      = "Delivered"
	DeliveryCancelled      = "Cancelled"
)

func ValidPaymentMethod(s string) bool {
	return s == PaymentCashOnDelivery || s == PaymentOnline
}

func ValidPaymentStatus(s string) bool {
	return s == PaymentPending || s == PaymentPaid || s == PaymentFailed
}

func ValidDeliveryStatus(s string) bool {
	switch s {
	case DeliveryPending, DeliveryConfirmed, DeliveryOutForDelivery, DeliveryDelivered, DeliveryCancelled:
		return true
	}
	return false
}

// OrderItem carries a price snapshot taken at order creation, insulated from
// later catalog price changes.
type OrderItem struct {
	ProductId primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity" validate:"required,min=1"`
	Price     float64            `bson:"price" json:"price"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}

// Order is immutable after creation except for paymentStatus and
// deliveryStatus.
type Order struct {
	Id             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId         primitive.ObjectID `bson:"userId" json:"userId"`
	AddressId      primitive.ObjectID `bson:"addressId" json:"addressId"`
	Items          []OrderItem        `bson:"items" json:"items"`
	TotalAmount    float64            `bson:"totalAmount" json:"totalAmount"`
	PaymentMethod  string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentId      string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	PaymentStatus  string             `bson:"paymentStatus" json:"paymentStatus"`
	DeliveryStatus string             `bson:"deliveryStatus" json:"deliveryStatus"`
	DeliveryTime   string             `bson:"deliveryTime,omitempty" json:"deliveryTime,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
