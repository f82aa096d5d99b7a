package entities

import "time"

// Sale is one line of a checkout. A multi-item cart produces several Sale
// rows created in the same transaction; the receipt references the first one.
type Sale struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"sale_id"`
	BusinessID uint      `gorm:"not null;index" json:"business_id"`
	FoodName   string    `gorm:"not null" json:"food_name"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	TotalPrice float64   `gorm:"type:decimal(10,2);not null" json:"total_price"`
	CreatedAt  time.Time `gorm:"type:timestamp;autoCreateTime" json:"created_at"`

	Business *Business `gorm:"foreignKey:BusinessID" json:"-"`
}

type Receipt struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessID  uint      `gorm:"not null;index" json:"business_id"`
	SaleID      uint      `gorm:"not null" json:"sale_id"`
	TotalPrice  float64   `gorm:"type:decimal(10,2);not null" json:"total_price"`
	ReceiptText string    `gorm:"type:text;not null" json:"receipt_text"`
	ReceiptDate time.Time `gorm:"type:timestamp;autoCreateTime" json:"receipt_date"`

	Business *Business `gorm:"foreignKey:BusinessID" json:"-"`
	Sale     *Sale     `gorm:"foreignKey:SaleID" json:"-"`
}
