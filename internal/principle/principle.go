// Package principle manages the principle-card collection.
package principle

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lifeos/internal/model"
	"lifeos/internal/store"
)

// Collection holds principle cards, newest first.
type Collection []model.Principle

// NewID generates a fresh card identifier.
func NewID() string {
	return "p_" + uuid.NewString()
}

// Add validates and prepends a new card so recent cards list first.
func Add(c Collection, title, category, body, tags string) (Collection, error) {
	if err := validate(title, body); err != nil {
		return c, err
	}
	card := model.Principle{
		ID:        NewID(),
		Title:     strings.TrimSpace(title),
		Category:  category,
		Body:      strings.TrimSpace(body),
		Tags:      strings.TrimSpace(tags),
		CreatedAt: time.Now().UTC(),
	}
	return append(Collection{card}, c...), nil
}

// Update replaces the fields of the card with the given id, keeping its
// identity and creation time. Stale ids are a silent no-op.
func Update(c Collection, id, title, category, body, tags string) (Collection, error) {
	if err := validate(title, body); err != nil {
		return c, err
	}
	for i := range c {
		if c[i].ID == id {
			c[i].Title = strings.TrimSpace(title)
			c[i].Category = category
			c[i].Body = strings.TrimSpace(body)
			c[i].Tags = strings.TrimSpace(tags)
			break
		}
	}
	return c, nil
}

// Remove deletes the card with the given id; absent ids are a no-op.
func Remove(c Collection, id string) Collection {
	for i := range c {
		if c[i].ID == id {
			return append(c[:i:i], c[i+1:]...)
		}
	}
	return c
}

// Find returns the card with the given id, or nil.
func Find(c Collection, id string) *model.Principle {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}

// Filter returns the cards in the given category. An empty filter or
// "all" returns every card.
func Filter(c Collection, category string) Collection {
	if category == "" || category == "all" {
		return c
	}
	var out Collection
	for _, p := range c {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func validate(title, body string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return fmt.Errorf("title and body are required")
	}
	return nil
}

// Load reads the card collection, treating absent or corrupt data as
// empty.
func Load(st *store.Store, log *zap.Logger) Collection {
	var c Collection
	if _, err := st.GetJSON(store.KeyPrinciples, &c); err != nil {
		if log != nil {
			log.Warn("discarding malformed principles", zap.Error(err))
		}
		return nil
	}
	return c
}

// Save persists the card collection. A nil collection is stored as an
// empty array.
func Save(st *store.Store, c Collection) error {
	if c == nil {
		c = Collection{}
	}
	return st.PutJSON(store.KeyPrinciples, c)
}
