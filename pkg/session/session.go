// Package session owns the single persisted session record. The auth service
// writes it, the dashboard dispatcher reads it; nobody else touches it.
package session

import (
	"encoding/json"

	"github.com/YuvrajZende/patientcare-flows/pkg/logger"
	"github.com/YuvrajZende/patientcare-flows/pkg/models"
	"github.com/YuvrajZende/patientcare-flows/pkg/store"
)

// schemaVersion guards the on-disk record layout. Bump when the record
// shape changes; unknown versions read as absent.
const schemaVersion = 1

type record struct {
	SchemaVersion int         `json:"schema_version"`
	User          models.User `json:"user"`
}

// Read returns the persisted session user, or ok=false when no session
// exists. Malformed or unsupported records are recovered by treating them as
// absent: logged, never surfaced to the caller.
func Read() (models.User, bool) {
	raw, ok, err := store.GetSession()
	if err != nil {
		logger.Error("session_read_failed", "error", err)
		return models.User{}, false
	}
	if !ok {
		return models.User{}, false
	}
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		logger.Warn("session_record_malformed", "error", err)
		return models.User{}, false
	}
	if rec.SchemaVersion != schemaVersion {
		logger.Warn("session_schema_unsupported", "version", rec.SchemaVersion)
		return models.User{}, false
	}
	return rec.User, true
}

// Write serializes and persists the session record, overwriting any
// existing session.
func Write(u models.User) error {
	data, err := json.Marshal(record{SchemaVersion: schemaVersion, User: u})
	if err != nil {
		return err
	}
	return store.SaveSession(data)
}

// Clear removes the persisted session record. Clearing twice is safe.
func Clear() error {
	return store.ClearSession()
}

// IsAuthenticated reports whether a readable session exists.
func IsAuthenticated() bool {
	_, ok := Read()
	return ok
}
