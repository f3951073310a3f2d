package domain

import "time"

// Product is one catalog record, keyed by its unique SKU.
// Color and size are optional columns in the source CSV; nil means the
// uploaded row carried no value for them.
type Product struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Sku       string    `gorm:"size:100;uniqueIndex;not null" json:"sku"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Brand     string    `gorm:"size:100;index;not null" json:"brand"`
	Color     *string   `gorm:"size:50;index" json:"color"`
	Size      *string   `gorm:"size:20" json:"size"`
	Mrp       float64   `gorm:"not null" json:"mrp"` // manufacturer retail price, upper bound on price
	Price     float64   `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"default:0" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
