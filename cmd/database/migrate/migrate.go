package migration

import (
	"fmt"
	"log"

	"resto-pos-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Business{}); err != nil {
		log.Fatalf("Error migrating business table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Sale{}); err != nil {
		log.Fatalf("Error migrating sale table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Receipt{}); err != nil {
		log.Fatalf("Error migrating receipt table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Purchase{}); err != nil {
		log.Fatalf("Error migrating purchase table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Expense{}); err != nil {
		log.Fatalf("Error migrating expense table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
