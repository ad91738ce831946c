package timetable

import (
	"go.uber.org/zap"

	"lifeos/internal/store"
)

// Session tracks which single entry, if any, is currently being edited.
// The zero value is the idle session. While a session is active the next
// add is reinterpreted as an update against the target id.
type Session struct {
	EditingID string `json:"editingId,omitempty"`
}

// Editing reports whether an edit session is active.
func (s Session) Editing() bool {
	return s.EditingID != ""
}

// Target returns the id under edit, or "" when idle.
func (s Session) Target() string {
	return s.EditingID
}

// StartEdit begins editing id. Starting a new session while one is active
// replaces it; the last selected entry wins.
func (s *Session) StartEdit(id string) {
	s.EditingID = id
}

// Clear returns the session to idle.
func (s *Session) Clear() {
	s.EditingID = ""
}

// EntryDeleted must be called whenever an entry is removed. If the
// deleted entry was the edit target the session resets to idle, so a
// later submit can never direct an update at a nonexistent id.
func (s *Session) EntryDeleted(id string) {
	if s.EditingID == id {
		s.EditingID = ""
	}
}

// LoadSession reads the persisted edit session. Absent or corrupt state
// degrades to the idle session.
func LoadSession(st *store.Store, log *zap.Logger) Session {
	var s Session
	if _, err := st.GetJSON(store.KeySession, &s); err != nil {
		if log != nil {
			log.Warn("discarding malformed edit session", zap.Error(err))
		}
		return Session{}
	}
	return s
}

// SaveSession persists the edit session so it survives between
// invocations.
func SaveSession(st *store.Store, s Session) error {
	return st.PutJSON(store.KeySession, s)
}
