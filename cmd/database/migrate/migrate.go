package migration

import (
	"fmt"
	"log"

	"NutriPlan-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Admin{}); err != nil {
		log.Fatalf("Error migrating admin database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealSelection{}); err != nil {
		log.Fatalf("Error migrating meal selection database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SamplePlan{}); err != nil {
		log.Fatalf("Error migrating sample plan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Subscription{}); err != nil {
		log.Fatalf("Error migrating subscription database: %v", err)
		return err
	}

	// One active subscription per user, enforced by the database so a
	// concurrent purchase cannot slip past the service-level check.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_subscriptions_one_active " +
		"ON subscriptions (user_id) WHERE status = 'active' AND deleted_at IS NULL;")

	fmt.Println("Database migration complete")
	return nil
}
