package library

// Storage keys for the three persisted collections. Each key holds one JSON
// array of the corresponding record type.
const (
	KeyBooks        = "books"
	KeyMembers      = "members"
	KeyTransactions = "transactions"
)

// Store is the persistence collaborator: a key-value store of raw JSON blobs.
// Load reports ok=false when the key has never been saved.
type Store interface {
	Load(key string) (raw []byte, ok bool, err error)
	Save(key string, raw []byte) error
}

// MemStore is an in-process Store for tests and ephemeral sessions.
type MemStore struct {
	data map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore { return &MemStore{data: make(map[string][]byte)} }

func (s *MemStore) Load(key string) ([]byte, bool, error) {
	raw, ok := s.data[key]
	return raw, ok, nil
}

func (s *MemStore) Save(key string, raw []byte) error {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	s.data[key] = cp
	return nil
}
