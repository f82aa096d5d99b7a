package entities

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessID   uint       `gorm:"not null;index" json:"business_id"`
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"not null;uniqueIndex" json:"email"`
	Password     string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"not null" json:"role"` // "admin" or "salesperson"
	ResetToken   *string    `json:"-"`
	ResetExpires *time.Time `json:"-"`

	Business *Business `gorm:"foreignKey:BusinessID" json:"-"`
	Timestamp
}
