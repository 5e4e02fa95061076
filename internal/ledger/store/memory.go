package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/PrimeDigitals001/Prototype-pos/internal/ledger/domain"
)

// MemoryStore keeps the marshaled document in memory. It has the same
// whole-document semantics as the gorm store and exists so services can be
// tested without a database.
type MemoryStore struct {
	mu   sync.Mutex
	raw  []byte
	seed *domain.Document
}

func NewMemoryStore(seed *domain.Document) *MemoryStore {
	return &MemoryStore{seed: seed}
}

func (s *MemoryStore) Load(ctx context.Context) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *MemoryStore) Save(ctx context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

func (s *MemoryStore) Update(ctx context.Context, fn func(*domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *MemoryStore) load() (*domain.Document, error) {
	if s.raw == nil {
		seed := s.seed
		if seed == nil {
			seed = &domain.Document{}
		}
		doc, err := seed.Clone()
		if err != nil {
			return nil, err
		}
		if err := s.save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}

	var doc domain.Document
	if err := json.Unmarshal(s.raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *MemoryStore) save(doc *domain.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.raw = raw
	return nil
}
