package testutil

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/KasumiMercury/meditrack/internal/infra/repository"
	"github.com/KasumiMercury/meditrack/internal/observability/logging"
)

const (
	postgresImage = "postgres:16"
	testDatabase  = "meditrack_test"
	testUser      = "meditrack"
	testPassword  = "meditrack"
)

// TestDB is a throwaway Postgres container migrated with the repository
// models. SQL is logged through slog at warn level.
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
	tables    []string
}

func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		postgresImage,
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logging.NewGormLogger(slog.Default(), 200*time.Millisecond, slog.LevelWarn),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	models := repository.Models()
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return &TestDB{
		Container: pgContainer,
		DB:        db,
		DSN:       dsn,
		tables:    tableNames(models),
	}
}

func (tdb *TestDB) TeardownTestDB(t *testing.T) {
	t.Helper()

	if sqlDB, err := tdb.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	if err := tdb.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// CleanTables empties every migrated table.
func (tdb *TestDB) CleanTables(t *testing.T) {
	t.Helper()

	stmt := "TRUNCATE TABLE " + strings.Join(tdb.tables, ", ") + " RESTART IDENTITY CASCADE"
	if err := tdb.DB.Exec(stmt).Error; err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
}

func tableNames(models []any) []string {
	names := make([]string, 0, len(models))

	for _, m := range models {
		if tabler, ok := m.(schema.Tabler); ok {
			names = append(names, tabler.TableName())
		}
	}

	return names
}
