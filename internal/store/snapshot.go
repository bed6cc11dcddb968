package store

import (
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// snapshotKey is the fixed store name the whole state is persisted under.
var snapshotKey = []byte("certificate-studio-storage")

// SnapshotStore keeps the serialized state in an embedded badger database so
// the store survives restarts.
type SnapshotStore struct {
	db *badger.DB
}

func OpenSnapshot(path string) (*SnapshotStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store at %s: %w", path, err)
	}
	return &SnapshotStore{db: db}, nil
}

func (s *SnapshotStore) Save(data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey, data)
	})
}

// Load returns the persisted snapshot, or nil when none has been written yet.
func (s *SnapshotStore) Load() ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return data, nil
}

func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
