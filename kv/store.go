// Package kv persists TSON values in a pebble database, one encoded
// message per key.
package kv

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"golang.org/x/sync/errgroup"

	"github.com/tsonio/tson"
	"github.com/tsonio/tson/types"
)

// ErrKeyNotFound is returned by Get when the key does not exist.
var ErrKeyNotFound = errors.New("key not found")

type Store struct {
	db *pebble.DB
}

// Open opens or creates a store at the given path.
func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put encodes v and stores it under k. If the key already exists, it
// overrides it.
func (s *Store) Put(k []byte, v types.Value) error {
	if len(k) == 0 {
		return errors.New("cannot store empty key")
	}

	enc, err := tson.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Set(k, enc, pebble.Sync)
}

// Get returns the value stored under k. If not found, returns
// ErrKeyNotFound.
func (s *Store) Get(k []byte) (types.Value, error) {
	enc, closer, err := s.db.Get(k)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errors.Wrapf(ErrKeyNotFound, "%q", k)
		}
		return nil, err
	}
	defer closer.Close()

	return tson.Unmarshal(enc)
}

// Delete removes the key. Deleting a missing key is not an error.
func (s *Store) Delete(k []byte) error {
	return s.db.Delete(k, pebble.Sync)
}

// PutAll stores every entry of m in one batch. Entries are encoded
// concurrently: each Marshal call owns its back-reference tables, so
// parallel encodes never share state.
func (s *Store) PutAll(m map[string]types.Value) error {
	type entry struct {
		k   string
		enc []byte
	}

	encoded := make([]entry, 0, len(m))
	ch := make(chan entry, len(m))

	var g errgroup.Group
	for k, v := range m {
		if len(k) == 0 {
			return errors.New("cannot store empty key")
		}

		k, v := k, v
		g.Go(func() error {
			enc, err := tson.Marshal(v)
			if err != nil {
				return errors.Wrapf(err, "key %q", k)
			}
			ch <- entry{k: k, enc: enc}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	close(ch)
	for e := range ch {
		encoded = append(encoded, e)
	}

	batch := s.db.NewBatch()
	defer batch.Close()

	for _, e := range encoded {
		if err := batch.Set([]byte(e.k), e.enc, nil); err != nil {
			return err
		}
	}

	return batch.Commit(pebble.Sync)
}

// Iterate calls fn for every key with the given prefix, in ascending
// key order.
func (s *Store) Iterate(prefix []byte, fn func(k []byte, v types.Value) error) error {
	opts := &pebble.IterOptions{}
	if len(prefix) > 0 {
		opts.LowerBound = prefix
		opts.UpperBound = keyUpperBound(prefix)
	}

	it := s.db.NewIter(opts)
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		v, err := tson.Unmarshal(it.Value())
		if err != nil {
			return errors.Wrapf(err, "key %q", it.Key())
		}

		if err := fn(it.Key(), v); err != nil {
			return err
		}
	}

	return it.Error()
}

func keyUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}

	return nil // no upper bound
}
