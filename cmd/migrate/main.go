package main

import (
	"log"
	"os"

	"openai-chatbot-be/internal/model"
	"openai-chatbot-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, 0)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running GORM migration...")

	if err := db.AutoMigrate(&model.Conversation{}, &model.Message{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// AutoMigrate does not emit the DESC ordering on composite indexes,
	// recreate the listing index explicitly.
	postMigrationSQL := []string{
		`DROP INDEX IF EXISTS idx_conversations_user_updated;`,
		`CREATE INDEX idx_conversations_user_updated ON conversations (user_uuid, updated_at DESC);`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: database migration completed.")
}
