// Package store provides the ledger document store implementations: a
// gorm-backed single-row JSON blob for production and an in-memory variant
// for tests.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/PrimeDigitals001/Prototype-pos/internal/ledger/domain"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// The whole ledger lives in one row. Load reads it, Save replaces it; the
// row id never changes so the document keeps its last-write-wins,
// single-writer semantics even though it sits in SQL.
const documentRowID = 1

type ledgerRecord struct {
	ID        int64          `gorm:"primaryKey"`
	Document  datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

func (ledgerRecord) TableName() string { return "ledger_documents" }

// GormStore persists the ledger document as a JSON blob in a single-row
// table.
type GormStore struct {
	mu   sync.Mutex
	db   *gorm.DB
	log  *zap.Logger
	seed *domain.Document
}

// NewGormStore migrates the backing table and returns the store. seed is
// persisted on the first Load when no document exists yet.
func NewGormStore(db *gorm.DB, log *zap.Logger, seed *domain.Document) (*GormStore, error) {
	if err := db.AutoMigrate(&ledgerRecord{}); err != nil {
		return nil, err
	}
	return &GormStore{
		db:   db,
		log:  log.Named("ledger.store"),
		seed: seed,
	}, nil
}

func (s *GormStore) Load(ctx context.Context) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *GormStore) Save(ctx context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, doc)
}

func (s *GormStore) Update(ctx context.Context, fn func(*domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(ctx, doc)
}

func (s *GormStore) load(ctx context.Context) (*domain.Document, error) {
	var rec ledgerRecord
	err := s.db.WithContext(ctx).First(&rec, "id = ?", documentRowID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return s.seedDocument(ctx)
	}

	var doc domain.Document
	if err := json.Unmarshal(rec.Document, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *GormStore) save(ctx context.Context, doc *domain.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := ledgerRecord{
			ID:        documentRowID,
			Document:  datatypes.JSON(raw),
			UpdatedAt: time.Now().UTC(),
		}
		result := tx.Model(&ledgerRecord{}).
			Where("id = ?", documentRowID).
			Updates(map[string]interface{}{
				"document":   rec.Document,
				"updated_at": rec.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return tx.Create(&rec).Error
		}
		return nil
	})
}

func (s *GormStore) seedDocument(ctx context.Context) (*domain.Document, error) {
	seed := s.seed
	if seed == nil {
		seed = &domain.Document{}
	}
	doc, err := seed.Clone()
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}
	s.log.Info("seeded initial ledger document",
		zap.Int("customers", len(doc.Customers)),
		zap.Int("items", len(doc.Items)),
	)
	return doc, nil
}
