// Package records implements the typed collection store: each collection is
// one JSON array under a single storage key, read and written whole.
//
// Append, UpdateByID and DeleteByID run their read-modify-write inside one
// transaction, which serializes writers sharing the database handle. Across
// independent load/save sequences the semantics remain last-write-wins; see
// DESIGN.md.
package records

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/tdnguyen/luxauto/internal/dbx"
	"github.com/tdnguyen/luxauto/internal/logging"
	"github.com/tdnguyen/luxauto/internal/storage"
)

// Identifiable is the constraint on stored record types.
type Identifiable interface {
	RecordID() int64
}

// UnmarshalCollection decodes a JSON array of records. Malformed input is
// treated as "collection does not exist" and yields nil; the caller decides
// whether that is worth a log line.
func UnmarshalCollection[T any](value string) []T {
	var recs []T
	if err := json.Unmarshal([]byte(value), &recs); err != nil {
		return nil
	}
	return recs
}

// Store is a typed repository over one named collection.
type Store[T Identifiable] struct {
	db  *sql.DB
	key string
	log logging.Logger
}

// NewStore binds a Store to the collection stored under key.
func NewStore[T Identifiable](db *sql.DB, key string, log logging.Logger) *Store[T] {
	return &Store[T]{db: db, key: key, log: log.With("collection", key)}
}

// Load returns the full collection. An absent key or malformed JSON degrades
// to an empty collection and is never surfaced as an error to the caller.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	return s.load(ctx, storage.NewSQLiteKV(s.db))
}

func (s *Store[T]) load(ctx context.Context, kv storage.KV) ([]T, error) {
	value, ok, err := kv.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	recs := UnmarshalCollection[T](value)
	if recs == nil && value != "null" {
		s.log.Warn(ctx, "collection is corrupt, treating as empty")
	}
	return recs, nil
}

// Save replaces the whole collection in a single synchronous write.
func (s *Store[T]) Save(ctx context.Context, recs []T) error {
	return s.save(ctx, storage.NewSQLiteKV(s.db), recs)
}

func (s *Store[T]) save(ctx context.Context, kv storage.KV, recs []T) error {
	if recs == nil {
		recs = []T{}
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	return kv.Set(ctx, s.key, string(data))
}

// Append inserts rec at the head of the collection, so the default read
// order is newest-first.
func (s *Store[T]) Append(ctx context.Context, rec T) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := storage.NewSQLiteKV(tx)
		recs, err := s.load(ctx, kv)
		if err != nil {
			return err
		}
		recs = append([]T{rec}, recs...)
		return s.save(ctx, kv, recs)
	})
}

// UpdateByID applies mutate to the first record whose ID equals id and saves
// the collection. When no record matches, nothing is written and found is
// false; absence is not an error.
func (s *Store[T]) UpdateByID(ctx context.Context, id int64, mutate func(*T)) (bool, error) {
	found := false
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := storage.NewSQLiteKV(tx)
		recs, err := s.load(ctx, kv)
		if err != nil {
			return err
		}
		for i := range recs {
			if recs[i].RecordID() == id {
				mutate(&recs[i])
				found = true
				return s.save(ctx, kv, recs)
			}
		}
		return nil
	})
	return found, err
}

// DeleteByID removes the first record whose ID equals id.
func (s *Store[T]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	found := false
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := storage.NewSQLiteKV(tx)
		recs, err := s.load(ctx, kv)
		if err != nil {
			return err
		}
		for i := range recs {
			if recs[i].RecordID() == id {
				recs = append(recs[:i], recs[i+1:]...)
				found = true
				return s.save(ctx, kv, recs)
			}
		}
		return nil
	})
	return found, err
}
