package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/mahiganga/marketplace-backend/internal/models"
)

// FileStore keeps the whole dataset in a single JSON document on disk: read
// fully, mutated in memory, written back wholesale. A mutex serializes the
// read-modify-write cycle so concurrent requests within this process cannot
// drop each other's changes.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// document is the on-disk layout of the JSON file.
type document struct {
	Users    []models.User    `json:"users"`
	Vehicles []models.Vehicle `json:"vehicles"`
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// load reads the whole document. A missing file is an empty document; the
// first write creates it.
func (s *FileStore) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return &doc, nil
}

func (s *FileStore) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) GetUser(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, u := range doc.Users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// ListVehicles returns vehicles in insertion order.
func (s *FileStore) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	if doc.Vehicles == nil {
		return []models.Vehicle{}, nil
	}
	return doc.Vehicles, nil
}

func (s *FileStore) GetVehicle(ctx context.Context, id int) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, v := range doc.Vehicles {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

// CreateVehicle assigns id = max(existing ids) + 1, or 1 for an empty
// collection, appends and persists.
func (s *FileStore) CreateVehicle(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	maxID := 0
	for _, existing := range doc.Vehicles {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	v.ID = maxID + 1
	if v.Images == nil {
		v.Images = []string{}
	}

	doc.Vehicles = append(doc.Vehicles, *v)
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateVehicle shallow-merges the supplied JSON fields over the stored
// record. Fields absent from partial keep their values; the id is immutable.
func (s *FileStore) UpdateVehicle(ctx context.Context, id int, partial []byte) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i, v := range doc.Vehicles {
		if v.ID != id {
			continue
		}
		merged := v
		if err := json.Unmarshal(partial, &merged); err != nil {
			return nil, fmt.Errorf("merge vehicle %d: %w", id, err)
		}
		merged.ID = id
		doc.Vehicles[i] = merged
		if err := s.save(doc); err != nil {
			return nil, err
		}
		return &merged, nil
	}
	return nil, ErrNotFound
}

func (s *FileStore) DeleteVehicle(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	for i, v := range doc.Vehicles {
		if v.ID == id {
			doc.Vehicles = append(doc.Vehicles[:i], doc.Vehicles[i+1:]...)
			return s.save(doc)
		}
	}
	return ErrNotFound
}
