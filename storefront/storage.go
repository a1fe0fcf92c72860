package storefront

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// StorageKey is the fixed key the cart is stored under.
const StorageKey = "auroraCart"

// CartStorage persists the cart between sessions. Implementations return
// an empty cart when nothing has been stored yet or the stored data is
// invalid.
type CartStorage interface {
	Load() ([]CartItem, error)
	Save(items []CartItem) error
}

// FileCartStore keeps the cart as a JSON file under a base directory,
// named after StorageKey. It is the durable storage of a single local
// shopper; it does not survive the directory being cleared.
type FileCartStore struct {
	path string
}

// NewFileCartStore creates a FileCartStore rooted at dir.
func NewFileCartStore(dir string) *FileCartStore {
	return &FileCartStore{path: filepath.Join(dir, StorageKey+".json")}
}

// Load reads the stored cart. A missing file or unparseable content yields
// an empty cart, not an error.
func (s *FileCartStore) Load() ([]CartItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []CartItem{}, nil
		}
		return nil, err
	}

	var items []CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return []CartItem{}, nil
	}
	return items, nil
}

// Save writes the cart, creating the base directory if needed.
func (s *FileCartStore) Save(items []CartItem) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// MemoryCartStore is an in-memory CartStorage stand-in for tests and
// ephemeral sessions.
type MemoryCartStore struct {
	mu    sync.Mutex
	items []CartItem
}

// NewMemoryCartStore creates an empty MemoryCartStore.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{}
}

func (s *MemoryCartStore) Load() ([]CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryCartStore) Save(items []CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]CartItem, len(items))
	copy(s.items, items)
	return nil
}
