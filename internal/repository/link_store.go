package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"qrlinx/internal/config"
	"qrlinx/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrLinkNotFound is returned when no link matches the owner and key
var ErrLinkNotFound = errors.New("link not found")

// LinkStore reads and deletes rows of the links table
type LinkStore struct {
	db *gorm.DB
}

var _ LinkStoreInterface = (*LinkStore)(nil)

// NewLinkStore opens the links database
func NewLinkStore(cfg *config.SQLConfig) (*LinkStore, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	// The backend owns the schema; migrating is only useful for local stacks
	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&model.Link{}); err != nil {
			return nil, fmt.Errorf("failed to migrate links: %w", err)
		}
	}

	log.Info().Str("driver", cfg.Driver).Msg("Links store connected")

	return &LinkStore{db: db}, nil
}

// NewLinkStoreWithDB wraps an open GORM handle
func NewLinkStoreWithDB(db *gorm.DB) *LinkStore {
	return &LinkStore{db: db}
}

// ListByOwner returns the owner's links, newest first
func (s *LinkStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	var links []model.Link
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// GetByHash retrieves one of the owner's links by short hash
func (s *LinkStore) GetByHash(ctx context.Context, ownerID, shortHash string) (*model.Link, error) {
	var link model.Link
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND short_hash = ?", ownerID, shortHash).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Delete removes one of the owner's links. Click history is removed by the
// database cascade.
func (s *LinkStore) Delete(ctx context.Context, ownerID string, id int64) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Link{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}
	return nil
}

// Close closes the database connection
func (s *LinkStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
