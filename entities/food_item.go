package entities

type FoodItem struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessID uint    `gorm:"not null;index:idx_food_business_name" json:"business_id"`
	Name       string  `gorm:"not null;index:idx_food_business_name" json:"name"`
	Price      float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock      int     `gorm:"not null;default:0" json:"stock"`

	Business *Business `gorm:"foreignKey:BusinessID" json:"-"`
	Timestamp
}
