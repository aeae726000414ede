package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gpng/quip-bot/models"
	"github.com/jinzhu/gorm"
)

// QuipStore keeps quips in a postgres table with id and message columns
type QuipStore struct {
	db    *gorm.DB
	table string
}

// NewQuipStore wraps db and makes sure the table exists
func NewQuipStore(db *sql.DB, table string) (*QuipStore, error) {
	gdb, err := gorm.Open("postgres", db)
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	if err := gdb.Table(table).AutoMigrate(&models.Quip{}).Error; err != nil {
		return nil, fmt.Errorf("migrate %s: %w", table, err)
	}
	return &QuipStore{db: gdb, table: table}, nil
}

// Put inserts quip
func (s *QuipStore) Put(ctx context.Context, quip models.Quip) error {
	if err := s.db.Table(s.table).Create(&quip).Error; err != nil {
		return fmt.Errorf("put quip %s: %w", quip.ID, err)
	}
	return nil
}

// Scan returns every stored quip
func (s *QuipStore) Scan(ctx context.Context) ([]models.Quip, error) {
	quips := []models.Quip{}
	if err := s.db.Table(s.table).Order("id").Find(&quips).Error; err != nil {
		return nil, fmt.Errorf("scan quips: %w", err)
	}
	return quips, nil
}

// Delete removes the quip with id, missing ids are fine
func (s *QuipStore) Delete(ctx context.Context, id string) error {
	if err := s.db.Table(s.table).Where("id = ?", id).Delete(&models.Quip{}).Error; err != nil {
		return fmt.Errorf("delete quip %s: %w", id, err)
	}
	return nil
}
