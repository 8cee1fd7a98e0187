package main

import (
	"os"

	"notes-softdelete/internal/model"
	"notes-softdelete/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		color.Yellow("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn, os.Getenv("DB_LOG_LEVEL"))
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions
	color.Yellow("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Red("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate
	models := model.All()
	color.Yellow("Step 2: Running AutoMigrate for %d Tables...", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	// 5. Post-Migration: partial indexes for the default (active) listings
	color.Yellow("Step 3: Creating Indexes...")

	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_notebooks_active_user ON notebooks (user_id, created_at DESC) WHERE is_deleted = false;`,
		`CREATE INDEX IF NOT EXISTS idx_notes_active_notebook ON notes (notebook_id, created_at DESC) WHERE is_deleted = false;`,
		`CREATE INDEX IF NOT EXISTS idx_notes_trash_user ON notes (user_id, deleted_at DESC) WHERE is_deleted = true;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Red("Warn: Failed to execute post-migration SQL: %v. Continuing...", err)
		}
	}

	color.Green("✅ Migration completed successfully")
}
