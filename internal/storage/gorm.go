package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRecord is the single-row persisted form of a cart snapshot.
type SnapshotRecord struct {
	Owner     string    `gorm:"primaryKey;size:128"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName pins the snapshot table name.
func (SnapshotRecord) TableName() string {
	return "cart_snapshots"
}

// GormStorage keeps the snapshot in one row keyed by owner. The upsert is a
// single statement, so the record is replaced atomically.
type GormStorage struct {
	db    *gorm.DB
	owner string
}

// NewGormStorage builds a SQL-backed snapshot store and ensures its table.
func NewGormStorage(db *gorm.DB, owner string) (*GormStorage, error) {
	if db == nil {
		return nil, fmt.Errorf("db handle required")
	}
	if owner == "" {
		return nil, fmt.Errorf("snapshot owner required")
	}
	if err := db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot table: %w", err)
	}
	return &GormStorage{db: db, owner: owner}, nil
}

func (g *GormStorage) Load(ctx context.Context) ([]byte, error) {
	var record SnapshotRecord
	err := g.db.WithContext(ctx).
		Where("owner = ?", g.owner).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot row: %w", err)
	}
	return record.Payload, nil
}

func (g *GormStorage) Save(ctx context.Context, raw []byte) error {
	record := SnapshotRecord{Owner: g.owner, Payload: raw}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("upsert snapshot row: %w", err)
	}
	return nil
}

func (g *GormStorage) Clear(ctx context.Context) error {
	err := g.db.WithContext(ctx).
		Where("owner = ?", g.owner).
		Delete(&SnapshotRecord{}).Error
	if err != nil {
		return fmt.Errorf("delete snapshot row: %w", err)
	}
	return nil
}
