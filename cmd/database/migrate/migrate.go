package migration

import (
	"fmt"
	"log"

	"github.com/ljubanOpacic10/tiac-food-ordering/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.FoodType{},
		&entities.Restaurant{},
		&entities.MenuItemType{},
		&entities.MenuItem{},
		&entities.VotingSession{},
		&entities.OrderingSession{},
		&entities.UserVote{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.Notification{},
		&entities.UserNotification{},
		&entities.Transaction{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	// At most one active session of each kind, enforced by the database.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_voting_sessions_one_active ON voting_sessions (status) WHERE status = 'active';")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_ordering_sessions_one_active ON ordering_sessions (status) WHERE status = 'active';")

	fmt.Println("Database migration complete")
	return nil
}
