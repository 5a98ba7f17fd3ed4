// Package filetree persists the file-explorer tree snapshot. Entity data is
// deliberately volatile, but the explorer tree survives restarts the same way
// the browser front-end kept it in local storage.
package filetree

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Node is a single file-explorer entry. Folders carry children; files carry
// size and type metadata.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"` // "folder" or "file"
	Size     int64  `json:"size,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	Modified string `json:"modified,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Snapshot is the persisted document: the whole tree plus the save moment.
type Snapshot struct {
	Roots   []Node `json:"roots"`
	SavedAt string `json:"saved_at"`
}

var (
	bucketName  = []byte("filetree")
	snapshotKey = []byte("snapshot")
)

// Store wraps BoltDB to persist the tree snapshot across process restarts.
type Store struct {
	db *bolt.DB
}

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Save replaces the stored snapshot with the given tree.
func (s *Store) Save(roots []Node) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	snapshot := Snapshot{
		Roots:   roots,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(snapshotKey, payload)
	})
}

// Load returns the stored snapshot, or ok=false when none was ever saved.
func (s *Store) Load() (Snapshot, bool, error) {
	if s == nil || s.db == nil {
		return Snapshot{}, false, bolt.ErrDatabaseNotOpen
	}
	var snapshot Snapshot
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		payload := tx.Bucket(bucketName).Get(snapshotKey)
		if payload == nil {
			return nil
		}
		if err := json.Unmarshal(payload, &snapshot); err != nil {
			return err
		}
		found = true
		return nil
	})
	return snapshot, found, err
}

// Available reports whether the underlying database is usable.
func (s *Store) Available() bool {
	if s == nil || s.db == nil {
		return false
	}
	return s.db.View(func(tx *bolt.Tx) error { return nil }) == nil
}

// Close releases the database file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
