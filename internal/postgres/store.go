package postgres

import (
	"context"
	"fmt"

	aqm "github.com/appetiteclub/apt"
	"github.com/glenwooddrivein/menuboard/internal/board"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultDSN = "postgres://localhost:5432/menuboard?sslmode=disable"

// Store owns the PostgreSQL connection shared by the repositories.
type Store struct {
	db     *gorm.DB
	logger aqm.Logger
	config *aqm.Config
}

// NewStore creates a new PostgreSQL store.
func NewStore(config *aqm.Config, logger aqm.Logger) *Store {
	if logger == nil {
		logger = aqm.NewNoopLogger()
	}
	return &Store{
		logger: logger,
		config: config,
	}
}

// Start opens the connection and migrates the schema.
func (s *Store) Start(ctx context.Context) error {
	dsn, _ := s.config.GetString("db.postgres.dsn")
	if dsn == "" {
		dsn = defaultDSN
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("cannot connect to PostgreSQL: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&board.MenuSection{},
		&board.MenuItem{},
		&board.Group{},
	); err != nil {
		return fmt.Errorf("cannot migrate schema: %w", err)
	}

	s.db = db
	s.logger.Info("Connected to PostgreSQL")
	return nil
}

// Stop closes the underlying connection pool.
func (s *Store) Stop(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("cannot access connection pool: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("cannot close PostgreSQL connection: %w", err)
	}
	s.logger.Info("Disconnected from PostgreSQL")
	return nil
}
