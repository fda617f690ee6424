package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"pixelpantry/entities"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.PantryItem{}); err != nil {
		log.Printf("Error migrating pantry item table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Printf("Error migrating recipe table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealPlan{}); err != nil {
		log.Printf("Error migrating meal plan table: %v", err)
		return err
	}

	// Indexes for the hot query paths. IF NOT EXISTS keeps migration idempotent.
	db.Exec("CREATE INDEX IF NOT EXISTS idx_pantry_category ON pantry_items(category)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_pantry_expiry ON pantry_items(expiry_date)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_recipes_category ON recipes(category)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_meal_plans_date ON meal_plans(date)")

	fmt.Println("Database migration complete")
	return nil
}
