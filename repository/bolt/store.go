package bolt

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/mentorhub/backend/domain"
)

// SchemaVersion tags the on-disk layout so future data-model changes can
// migrate old files instead of misreading them.
const SchemaVersion = 1

const (
	bucketName = "records"

	keyMentors    = "mentors"
	keyMentees    = "mentees"
	keyActiveUser = "active_user"
	keySchema     = "schema_version"
)

// Store wraps a BoltDB file holding the three whole-value JSON records the
// platform persists: the mentor credentials, the mentee roster and the
// active-user session. Each record is read and rewritten in full.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open initializes the BoltDB file, ensures the bucket exists and stamps or
// verifies the schema version.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, bucket: []byte(bucketName)}
	if err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		return migrateSchema(b)
	}); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// migrateSchema upgrades older layouts in place. Version 1 is the first
// tagged layout; files written before tagging are stamped as v1.
func migrateSchema(b *bolt.Bucket) error {
	raw := b.Get([]byte(keySchema))
	version := 0
	if raw != nil {
		if parsed, err := strconv.Atoi(string(raw)); err == nil {
			version = parsed
		}
	}
	if version > SchemaVersion {
		return domain.NewError(domain.ErrCodeInternal, "store written by a newer version")
	}
	if version == SchemaVersion {
		return nil
	}
	return b.Put([]byte(keySchema), []byte(strconv.Itoa(SchemaVersion)))
}

// Version reports the schema version stamped on the file.
func (s *Store) Version() (int, error) {
	var version int
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(s.bucket).Get([]byte(keySchema))
		if raw == nil {
			return domain.NewError(domain.ErrCodeInternal, "store has no schema version")
		}
		parsed, err := strconv.Atoi(string(raw))
		if err != nil {
			return err
		}
		version = parsed
		return nil
	})
	return version, err
}

// Ping verifies the store is open and readable.
func (s *Store) Ping() error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(s.bucket) == nil {
			return bolt.ErrBucketNotFound
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

func (s *Store) read(key string, dest interface{}) (bool, error) {
	if s == nil || s.db == nil {
		return false, bolt.ErrDatabaseNotOpen
	}
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(s.bucket).Get([]byte(key))
		if raw == nil {
			return nil
		}
		found = true
		return json.Unmarshal(raw, dest)
	})
	return found, err
}

func (s *Store) write(key string, value interface{}) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), payload)
	})
}

func (s *Store) delete(key string) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(key))
	})
}
