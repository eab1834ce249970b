package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mediolano-app/mip-indexer/internal/domain"
	"github.com/mediolano-app/mip-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the store tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.KeyValueStore{},
		&schema.TxEnrichment{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// GetBlockCursor retrieves the last processed block number for a source
func (s *pgStore) GetBlockCursor(ctx context.Context, source string) (uint64, error) {
	key := fmt.Sprintf("block_cursor:%s", source)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	blockNumber, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}

	return blockNumber, nil
}

// SetBlockCursor stores the last processed block number for a source
func (s *pgStore) SetBlockCursor(ctx context.Context, source string, blockNumber uint64) error {
	kv := schema.KeyValueStore{
		Key:   fmt.Sprintf("block_cursor:%s", source),
		Value: strconv.FormatUint(blockNumber, 10),
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}

	return nil
}

// GetTxEnrichments retrieves persisted enrichments for the given hashes
func (s *pgStore) GetTxEnrichments(ctx context.Context, hashes []string, notBefore time.Time) (map[string]domain.TxEnrichment, error) {
	if len(hashes) == 0 {
		return map[string]domain.TxEnrichment{}, nil
	}

	var rows []schema.TxEnrichment
	err := s.db.WithContext(ctx).
		Where("hash IN ?", hashes).
		Where("cached_at >= ?", notBefore).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tx enrichments: %w", err)
	}

	result := make(map[string]domain.TxEnrichment, len(rows))
	for _, row := range rows {
		result[row.Hash] = domain.TxEnrichment{
			TimestampIso: row.TimestampIso,
			Sender:       row.Sender,
		}
	}

	return result, nil
}

// SaveTxEnrichments upserts enrichments with the given cache time
func (s *pgStore) SaveTxEnrichments(ctx context.Context, items map[string]domain.TxEnrichment, cachedAt time.Time) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]schema.TxEnrichment, 0, len(items))
	for hash, item := range items {
		rows = append(rows, schema.TxEnrichment{
			Hash:         hash,
			TimestampIso: item.TimestampIso,
			Sender:       item.Sender,
			CachedAt:     cachedAt,
		})
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hash"}},
			UpdateAll: true,
		}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to save tx enrichments: %w", err)
	}

	return nil
}
