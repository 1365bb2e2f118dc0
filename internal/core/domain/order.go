package domain

import (
	"fmt"
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}

// ActiveOrderStatuses are the statuses counted as in-flight on the dashboard.
var ActiveOrderStatuses = []OrderStatus{OrderPending, OrderProcessing, OrderShipped}

// DefaultCurrency is applied to every new order.
const DefaultCurrency = "USD"

// ParseOrderStatus converts s into an OrderStatus, rejecting unknown values.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range OrderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown order status %q", ErrValidation, s)
}

// Order is a trade request placed by a user.
type Order struct {
	ID                 string      `json:"id" bson:"_id"`
	UserID             string      `json:"user_id" bson:"user_id"`
	OrderNumber        string      `json:"order_number" bson:"order_number"`
	ProductCategory    string      `json:"product_category" bson:"product_category"`
	ProductDescription string      `json:"product_description" bson:"product_description"`
	Quantity           string      `json:"quantity" bson:"quantity"`
	DestinationCountry string      `json:"destination_country" bson:"destination_country"`
	Status             OrderStatus `json:"status" bson:"status"`
	CreatedAt          time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at" bson:"updated_at"`
	EstimatedDelivery  *time.Time  `json:"estimated_delivery" bson:"estimated_delivery,omitempty"`
	TrackingNumber     *string     `json:"tracking_number" bson:"tracking_number,omitempty"`
	Notes              *string     `json:"notes" bson:"notes,omitempty"`
	TotalAmount        *float64    `json:"total_amount" bson:"total_amount,omitempty"`
	Currency           string      `json:"currency" bson:"currency"`
}

// OrderUpdate carries the mutable order fields. Nil fields are left untouched.
type OrderUpdate struct {
	Status            *OrderStatus
	TrackingNumber    *string
	EstimatedDelivery *time.Time
	Notes             *string
	TotalAmount       *float64
}

// IsEmpty reports whether the update carries no fields.
func (u OrderUpdate) IsEmpty() bool {
	return u.Status == nil && u.TrackingNumber == nil && u.EstimatedDelivery == nil &&
		u.Notes == nil && u.TotalAmount == nil
}

// OrderNumber formats the human-readable number for a user's n-th order.
//
// The caller derives n from a count of existing orders, so two concurrent
// creations by the same user can observe the same count and mint the same
// number. Callers accept that race.
func OrderNumber(userID string, n int64) string {
	prefix := userID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("ORD-%s-%04d", prefix, n)
}
