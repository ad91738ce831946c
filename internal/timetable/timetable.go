// Package timetable owns the daily timetable: validation and
// canonicalization of entry times, the collection operations, and the
// edit-session state that turns an add into an update.
package timetable

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lifeos/internal/model"
	"lifeos/internal/store"
)

// Collection is the in-memory set of timetable entries. Persistence order
// is insertion order; display order is always derived via Sort.
type Collection []model.TimetableEntry

// NewID generates a fresh entry identifier. Seeded entries use the fixed
// r_<HHMM> scheme instead; both share the r_ prefix.
func NewID() string {
	return "r_" + uuid.NewString()
}

// Decode parses a persisted timetable blob. The top level must be a JSON
// array; rows that are not objects or that lack a time or activity field
// are dropped without failing the rest. The returned error distinguishes
// a malformed blob from a legitimately empty one; callers at the storage
// boundary collapse it to an empty collection.
func Decode(raw []byte) (Collection, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parsing timetable: %w", err)
	}

	var entries Collection
	for _, r := range rows {
		var row struct {
			ID       string  `json:"id"`
			Time     *string `json:"time"`
			Activity *string `json:"activity"`
		}
		if err := json.Unmarshal(r, &row); err != nil {
			continue
		}
		if row.Time == nil || row.Activity == nil {
			continue
		}
		entries = append(entries, model.TimetableEntry{
			ID:       row.ID,
			Time:     *row.Time,
			Activity: *row.Activity,
		})
	}
	return entries, nil
}

// Normalize rewrites every entry's time to canonical HH:MM form and drops
// entries whose time cannot be normalized. Activity text passes through
// unchanged, empty strings included. Normalize is idempotent.
func Normalize(entries []model.TimetableEntry) Collection {
	out := make(Collection, 0, len(entries))
	for _, e := range entries {
		t, ok := NormalizeTime(e.Time)
		if !ok {
			continue
		}
		e.Time = t
		out = append(out, e)
	}
	return out
}

// Insert validates and appends a new entry with a fresh id. The time is
// stored in canonical form. On a validation failure the collection is
// returned unchanged along with the reason.
func Insert(c Collection, timeStr, activity string) (Collection, error) {
	t, err := validate(timeStr, activity)
	if err != nil {
		return c, err
	}
	return append(c, model.TimetableEntry{
		ID:       NewID(),
		Time:     t,
		Activity: strings.TrimSpace(activity),
	}), nil
}

// Update replaces the time and activity of the entry with the given id,
// keeping its identity. A stale id is tolerated as a silent no-op.
func Update(c Collection, id, timeStr, activity string) (Collection, error) {
	t, err := validate(timeStr, activity)
	if err != nil {
		return c, err
	}
	for i := range c {
		if c[i].ID == id {
			c[i].Time = t
			c[i].Activity = strings.TrimSpace(activity)
			break
		}
	}
	return c, nil
}

// Remove deletes the entry with the given id; absent ids are a no-op.
func Remove(c Collection, id string) Collection {
	for i := range c {
		if c[i].ID == id {
			return append(c[:i:i], c[i+1:]...)
		}
	}
	return c
}

// Find returns the entry with the given id, or nil.
func Find(c Collection, id string) *model.TimetableEntry {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}

// Sort returns a new collection ordered by ascending minutes since
// midnight. Entries with unparseable times sort last. The sort is stable,
// so equal times keep their stored relative order.
func Sort(c Collection) Collection {
	out := make(Collection, len(c))
	copy(out, c)
	sort.SliceStable(out, func(i, j int) bool {
		return ParseMinutes(out[i].Time) < ParseMinutes(out[j].Time)
	})
	return out
}

func validate(timeStr, activity string) (string, error) {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return "", fmt.Errorf("time is required")
	}
	if strings.TrimSpace(activity) == "" {
		return "", fmt.Errorf("activity is required")
	}
	t, ok := NormalizeTime(timeStr)
	if !ok {
		return "", fmt.Errorf("invalid time %q: use HH:MM (00:00–23:59)", timeStr)
	}
	return t, nil
}

// Load reads the timetable from st, treating absent or malformed data as
// an empty collection. If nothing valid survives normalization, the
// built-in template is written back immediately and returned, so the
// first read of a fresh store also populates it.
func Load(st *store.Store, log *zap.Logger) Collection {
	if log == nil {
		log = zap.NewNop()
	}

	var entries Collection
	raw, err := st.Get(store.KeyTimetable)
	if err != nil {
		log.Warn("reading timetable", zap.Error(err))
	} else if raw != nil {
		entries, err = Decode(raw)
		if err != nil {
			log.Warn("discarding malformed timetable", zap.Error(err))
		}
	}

	entries = Normalize(entries)
	if len(entries) > 0 {
		return entries
	}

	seeded := DefaultEntries()
	if err := Save(st, seeded); err != nil {
		log.Warn("persisting seeded timetable", zap.Error(err))
	}
	return seeded
}

// Save persists the collection under the timetable key. A nil collection
// is stored as an empty array, never as JSON null.
func Save(st *store.Store, c Collection) error {
	if c == nil {
		c = Collection{}
	}
	return st.PutJSON(store.KeyTimetable, c)
}
