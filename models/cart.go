package models

import "time"

// CartItem is one row per (user, product) pair; the unique index keeps
// repeated adds folding into the quantity counter instead of new rows.
// Name/Price/Image are copied from the product at add time and may go
// stale; checkout re-prices against the catalog and never trusts them.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_user_product" json:"userId"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_user_product" json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"img"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	AddedAt   time.Time `json:"-"`
}
