package entities

import "time"

type Purchase struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessID uint      `gorm:"not null;index" json:"business_id"`
	Item       string    `gorm:"not null" json:"item"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt  time.Time `gorm:"type:timestamp;autoCreateTime" json:"created_at"`

	Business *Business `gorm:"foreignKey:BusinessID" json:"-"`
}

type Expense struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessID  uint      `gorm:"not null;index" json:"business_id"`
	Description string    `gorm:"not null" json:"description"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreatedAt   time.Time `gorm:"type:timestamp;autoCreateTime" json:"created_at"`

	Business *Business `gorm:"foreignKey:BusinessID" json:"-"`
}
