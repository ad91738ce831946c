// Package routine manages the recurring-habit collection.
package routine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lifeos/internal/model"
	"lifeos/internal/store"
)

// DefaultType is the routine type assigned when none is given.
const DefaultType = "Daily"

// Collection holds routines, newest first.
type Collection []model.Routine

// NewID generates a fresh routine identifier.
func NewID() string {
	return "r_" + uuid.NewString()
}

// Add validates and prepends a new routine. The done flag starts false.
func Add(c Collection, name, routineType, note string) (Collection, error) {
	if strings.TrimSpace(name) == "" {
		return c, fmt.Errorf("routine name is required")
	}
	if routineType == "" {
		routineType = DefaultType
	}
	r := model.Routine{
		ID:        NewID(),
		Name:      strings.TrimSpace(name),
		Type:      routineType,
		Note:      strings.TrimSpace(note),
		CreatedAt: time.Now().UTC(),
	}
	return append(Collection{r}, c...), nil
}

// Update replaces name, type and note of the routine with the given id,
// keeping identity, done flag and creation time. Stale ids are a silent
// no-op.
func Update(c Collection, id, name, routineType, note string) (Collection, error) {
	if strings.TrimSpace(name) == "" {
		return c, fmt.Errorf("routine name is required")
	}
	if routineType == "" {
		routineType = DefaultType
	}
	for i := range c {
		if c[i].ID == id {
			c[i].Name = strings.TrimSpace(name)
			c[i].Type = routineType
			c[i].Note = strings.TrimSpace(note)
			break
		}
	}
	return c, nil
}

// Remove deletes the routine with the given id; absent ids are a no-op.
func Remove(c Collection, id string) Collection {
	for i := range c {
		if c[i].ID == id {
			return append(c[:i:i], c[i+1:]...)
		}
	}
	return c
}

// Find returns the routine with the given id, or nil.
func Find(c Collection, id string) *model.Routine {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}

// SetDone marks the routine's done flag. Stale ids are a silent no-op.
func SetDone(c Collection, id string, done bool) Collection {
	for i := range c {
		if c[i].ID == id {
			c[i].Done = done
			break
		}
	}
	return c
}

// Filter returns the routines of the given type. An empty filter or
// "all" returns every routine.
func Filter(c Collection, routineType string) Collection {
	if routineType == "" || routineType == "all" {
		return c
	}
	var out Collection
	for _, r := range c {
		if r.Type == routineType {
			out = append(out, r)
		}
	}
	return out
}

// Load reads the routine collection, treating absent or corrupt data as
// empty.
func Load(st *store.Store, log *zap.Logger) Collection {
	var c Collection
	if _, err := st.GetJSON(store.KeyRoutines, &c); err != nil {
		if log != nil {
			log.Warn("discarding malformed routines", zap.Error(err))
		}
		return nil
	}
	return c
}

// Save persists the routine collection. A nil collection is stored as an
// empty array.
func Save(st *store.Store, c Collection) error {
	if c == nil {
		c = Collection{}
	}
	return st.PutJSON(store.KeyRoutines, c)
}
