package grana

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultKey is the storage key used when none is configured. It names
// the JSON blob inside the store directory.
const DefaultKey = "transacoes"

// Store owns a ledger and its persisted JSON blob. All mutations go
// through the store, serialized by a mutex, so concurrent appends from
// several goroutines cannot interleave a read-modify-write.
//
// Persistence is non-fatal: a failed write leaves the in-memory ledger
// updated and the blob stale, reported as a *StorageError.
type Store struct {
	dir string
	key string

	mu     sync.Mutex
	ledger *Ledger
	subs   []func([]Transaction)
}

// Open loads the store at dir under the given key, creating the
// directory if needed. A missing blob yields an empty ledger. A
// malformed blob is logged and treated as empty rather than blocking
// the user out of their data file.
func Open(dir, key string) (*Store, error) {
	if key == "" {
		key = DefaultKey
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &StorageError{Op: "read", Path: dir, Err: err}
	}
	s := &Store{dir: dir, key: key}

	data, err := os.ReadFile(s.path())
	switch {
	case os.IsNotExist(err):
		s.ledger = NewLedger()
	case err != nil:
		return nil, &StorageError{Op: "read", Path: s.path(), Err: err}
	default:
		ledger, derr := DecodeLedger(bytes.NewReader(data))
		if derr != nil {
			Log.WithField("path", s.Path()).WithError(derr).Warn("ledger blob is malformed, starting empty")
			ledger = NewLedger()
		}
		s.ledger = ledger
	}
	return s, nil
}

func (s *Store) path() string { return filepath.Join(s.dir, s.key+".json") }

// Path returns the location of the persisted blob.
func (s *Store) Path() string { return s.path() }

// Snapshot returns a copy of the current transactions, newest first.
func (s *Store) Snapshot() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Slice()
}

// Subscribe registers a callback invoked with a fresh snapshot after
// every successful mutation. Callbacks run synchronously, outside the
// store lock.
func (s *Store) Subscribe(fn func([]Transaction)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Append validates the draft, assigns it an id and creation time,
// prepends it to the ledger and persists. On a *ValidationError nothing
// is stored. On a *StorageError the transaction is still returned and
// kept in memory.
func (s *Store) Append(d Draft) (Transaction, error) {
	t, err := d.Validate()
	if err != nil {
		return Transaction{}, err
	}
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	s.ledger.Append(t)
	perr := s.persist()
	s.mu.Unlock()

	s.notify()
	return t, perr
}

// Remove deletes the transaction with the given id. Removing an unknown
// id is a no-op and does not touch the blob.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	removed := s.ledger.Remove(id)
	var perr error
	if removed {
		perr = s.persist()
	}
	s.mu.Unlock()

	if removed {
		s.notify()
	}
	return perr
}

// persist writes the ledger atomically, temp file then rename, so a
// crash mid-write cannot leave a truncated blob. Callers hold s.mu.
func (s *Store) persist() error {
	tmp, err := os.CreateTemp(s.dir, s.key+"-*.tmp")
	if err != nil {
		return &StorageError{Op: "write", Path: s.path(), Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, s.ledger); err != nil {
		tmp.Close()
		return &StorageError{Op: "write", Path: s.path(), Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageError{Op: "write", Path: s.path(), Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path()); err != nil {
		return &StorageError{Op: "write", Path: s.path(), Err: err}
	}
	return nil
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := append([]func([]Transaction){}, s.subs...)
	snapshot := s.ledger.Slice()
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snapshot)
	}
}
