package store

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/pebble"

	"github.com/YuvrajZende/patientcare-flows/pkg/logger"
)

var db *pebble.DB

// dbPath remembers the opened path for diagnostics.
var dbPath string

// seq disambiguates event keys when multiple writes share the same
// nanosecond timestamp.
var seq uint64

// sessionKey is the single well-known key holding the persisted session
// record. There is exactly zero or one session at a time.
const sessionKey = "session:current"

// eventPrefix namespaces the append-only audit event log.
const eventPrefix = "event:"

// Open opens (or creates) a Pebble database at the given path and keeps
// a global handle for simple usage in this package.
func Open(path string) error {
	var err error
	logger.Info("opening_pebble_db", "path", path)
	db, err = pebble.Open(path, &pebble.Options{})
	if err != nil {
		logger.Error("pebble_open_failed", "path", path, "error", err)
		return err
	}
	dbPath = path
	logger.Info("pebble_opened", "path", path)
	return nil
}

// Close closes the opened pebble DB if present.
func Close() error {
	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		return err
	}
	db = nil
	logger.Info("pebble_closed")
	return nil
}

// Ready reports whether the store is opened and ready.
func Ready() bool {
	return db != nil
}

// SaveSession overwrites the persisted session record.
func SaveSession(data []byte) error {
	if db == nil {
		return fmt.Errorf("pebble not opened; call store.Open first")
	}
	if err := db.Set([]byte(sessionKey), data, pebble.Sync); err != nil {
		logger.Error("save_session_failed", "error", err)
		return err
	}
	return nil
}

// GetSession returns the persisted session record, or ok=false when absent.
func GetSession() ([]byte, bool, error) {
	if db == nil {
		return nil, false, fmt.Errorf("pebble not opened; call store.Open first")
	}
	v, closer, err := db.Get([]byte(sessionKey))
	if err == pebble.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	out := append([]byte(nil), v...)
	_ = closer.Close()
	return out, true, nil
}

// ClearSession removes the persisted session record. Clearing an absent
// session is a success.
func ClearSession() error {
	if db == nil {
		return fmt.Errorf("pebble not opened; call store.Open first")
	}
	if err := db.Delete([]byte(sessionKey), pebble.Sync); err != nil {
		logger.Error("clear_session_failed", "error", err)
		return err
	}
	return nil
}

// AppendEvent appends an audit event to the local event log under a key with
// a sortable timestamp prefix. Events are ordered by insertion time.
func AppendEvent(data []byte) error {
	if db == nil {
		return fmt.Errorf("pebble not opened; call store.Open first")
	}
	// Key format: event:<unix_nano_padded>-<seq>
	ts := time.Now().UTC().UnixNano()
	s := atomic.AddUint64(&seq, 1)
	key := fmt.Sprintf("%s%020d-%06d", eventPrefix, ts, s)
	if err := db.Set([]byte(key), data, pebble.Sync); err != nil {
		logger.Error("append_event_failed", "key", key, "error", err)
		return err
	}
	return nil
}

// ListEvents returns all audit events in insertion order. An optional limit
// caps the number of returned entries.
func ListEvents(limit ...int) ([]string, error) {
	if db == nil {
		return nil, fmt.Errorf("pebble not opened; call store.Open first")
	}
	prefix := []byte(eventPrefix)
	iter, err := db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	max := -1
	if len(limit) > 0 {
		max = limit[0]
	}
	var out []string
	for iter.SeekGE(prefix); iter.Valid(); iter.Next() {
		if !bytes.HasPrefix(iter.Key(), prefix) {
			break
		}
		v := append([]byte(nil), iter.Value()...)
		out = append(out, string(v))
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out, iter.Error()
}
