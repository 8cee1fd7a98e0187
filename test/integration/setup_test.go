package integration

import (
	"log"
	"os"
	"testing"

	"notes-softdelete/internal/bootstrap"
	"notes-softdelete/internal/config"
	"notes-softdelete/internal/model"
	"notes-softdelete/internal/server"
	"notes-softdelete/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testJwtSecret = "integration-secret"

// openTestDB connects to DB_CONNECTION_STRING and migrates the schema, or
// skips the test when no database is configured.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, "silent")
	require.NoError(t, err, "Failed to connect to DB")

	require.NoError(t, db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error)
	require.NoError(t, db.Exec(`CREATE EXTENSION IF NOT EXISTS vector;`).Error)
	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func newTestServer(t *testing.T, db *gorm.DB) *server.Server {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        t.TempDir() + "/app.log",
			CorsAllowedOrigins: "*",
		},
		SoftDelete: config.SoftDeleteConfig{AtomicCascade: true},
		Auth:       config.AuthConfig{JwtSecret: testJwtSecret},
		Events:     config.EventsConfig{TrashTopic: "trash-events"},
	}

	return server.New(cfg, bootstrap.NewContainer(db, cfg))
}
