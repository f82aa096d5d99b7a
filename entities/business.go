package entities

type Business struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null" json:"email"`

	Users     []*User     `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE" json:"-"`
	FoodItems []*FoodItem `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE" json:"-"`
	Sales     []*Sale     `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE" json:"-"`
	Purchases []*Purchase `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE" json:"-"`
	Expenses  []*Expense  `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
