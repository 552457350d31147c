package buffer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// drainOrder lists entity buckets in the order GetBatch scans them. Journey
// snapshots carry user-visible task state and drain first.
var drainOrder = []string{EntityJourney, EntityBusinessProfile, EntityUser}

// Store wraps BoltDB to persist buffered writes while Postgres or Redis are
// unavailable. Each entity kind gets its own bucket.
type Store struct {
	db *bolt.DB
}

// Open initializes the BoltDB file and ensures all entity buckets exist.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range drainOrder {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Enqueue stores a buffer item in its entity bucket under a priority-aware key.
func (s *Store) Enqueue(item Item) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if !knownEntity(item.Entity) {
		return fmt.Errorf("unknown buffer entity %q", item.Entity)
	}
	item.normalize()
	item.bucketKey = []byte(buildKey(item))

	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(item.Entity)).Put(item.bucketKey, payload)
	})
}

// GetBatch returns up to limit items without removing them, walking entity
// buckets in drain order.
func (s *Store) GetBatch(limit int) ([]Item, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	if limit <= 0 {
		limit = 50
	}

	var items []Item
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, name := range drainOrder {
			c := tx.Bucket([]byte(name)).Cursor()
			for k, v := c.First(); k != nil && len(items) < limit; k, v = c.Next() {
				var item Item
				if err := json.Unmarshal(v, &item); err != nil {
					continue
				}
				item.bucketKey = append([]byte(nil), k...)
				items = append(items, item)
			}
			if len(items) >= limit {
				return nil
			}
		}
		return nil
	})
	return items, err
}

// Remove deletes the provided item from its entity bucket.
func (s *Store) Remove(item Item) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if !knownEntity(item.Entity) {
		return fmt.Errorf("unknown buffer entity %q", item.Entity)
	}
	key := item.bucketKey
	if len(key) == 0 {
		key = []byte(buildKey(item))
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(item.Entity)).Delete(key)
	})
}

// Requeue re-inserts an item after bumping its timestamp so it moves to the
// back of its bucket.
func (s *Store) Requeue(item Item) error {
	item.bucketKey = nil
	item.Timestamp = time.Now()
	return s.Enqueue(item)
}

// Size returns the number of buffered items across all entity buckets.
func (s *Store) Size() (int, error) {
	if s == nil || s.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, name := range drainOrder {
			count += tx.Bucket([]byte(name)).Stats().KeyN
		}
		return nil
	})
	return count, err
}

// Cleanup removes items older than the provided timestamp.
func (s *Store) Cleanup(olderThan time.Time) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range drainOrder {
			c := tx.Bucket([]byte(name)).Cursor()
			for k, v := c.First(); k != nil; k, v = c.Next() {
				var item Item
				if err := json.Unmarshal(v, &item); err != nil {
					continue
				}
				if item.Timestamp.Before(olderThan) {
					if err := c.Delete(); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Stats exposes Bolt statistics for monitoring endpoints.
func (s *Store) Stats() bolt.Stats {
	if s == nil || s.db == nil {
		return bolt.Stats{}
	}
	return s.db.Stats()
}

func knownEntity(entity string) bool {
	for _, name := range drainOrder {
		if entity == name {
			return true
		}
	}
	return false
}

func buildKey(item Item) string {
	return fmt.Sprintf("%d_%020d_%s", item.Priority, item.Timestamp.UnixNano(), item.ID)
}
