package models

import "time"

type OrderStatus string

const (
	// Every order starts here and waits for an administrator to check
	// the submitted UTR against the UPI statement.
	OrderStatusPendingVerification OrderStatus = "Pending Verification"

	// Terminal states. No transition leads out of either.
	OrderStatusPaid     OrderStatus = "Paid"
	OrderStatusRejected OrderStatus = "Rejected"
)

// Order is write-once except for Status. Items hold their own copies of
// product name/price so later catalog edits never rewrite history.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          string      `gorm:"not null" json:"userId"`
	User            User        `gorm:"foreignKey:UserID" json:"user"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          OrderStatus `gorm:"type:VARCHAR(32);default:'Pending Verification'" json:"status"`
	PaymentMethod   string      `json:"paymentMethod"`
	TransactionID   string      `json:"transactionId"`
	ShippingAddress string      `json:"shippingAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderID  uint    `gorm:"index" json:"-"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
