package principle_test

import (
	"reflect"
	"testing"

	"lifeos/internal/principle"
	"lifeos/internal/store"
)

func TestAddPrepends(t *testing.T) {
	c, err := principle.Add(nil, "First", "Inner OS", "body one", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	c, err = principle.Add(c, "Second", "Inner OS", "body two", "tag")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if len(c) != 2 {
		t.Fatalf("len = %d, want 2", len(c))
	}
	if c[0].Title != "Second" {
		t.Errorf("newest card is %q, want Second first", c[0].Title)
	}
	if c[0].ID == c[1].ID {
		t.Error("duplicate ids generated")
	}
	if c[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestAddRequiresTitleAndBody(t *testing.T) {
	for _, c := range []struct{ title, body string }{
		{"", "body"},
		{"title", ""},
		{"  ", "body"},
	} {
		got, err := principle.Add(nil, c.title, "cat", c.body, "")
		if err == nil {
			t.Errorf("Add(%q, %q) accepted, want rejection", c.title, c.body)
		}
		if got != nil {
			t.Errorf("Add(%q, %q) mutated the collection", c.title, c.body)
		}
	}
}

func TestUpdateKeepsIdentity(t *testing.T) {
	c, _ := principle.Add(nil, "Old", "cat", "body", "")
	id := c[0].ID
	created := c[0].CreatedAt

	c, err := principle.Update(c, id, "New", "other", "changed", "t")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if c[0].ID != id || !c[0].CreatedAt.Equal(created) {
		t.Error("Update changed identity or creation time")
	}
	if c[0].Title != "New" || c[0].Category != "other" {
		t.Errorf("updated card = %+v", c[0])
	}
}

func TestUpdateStaleIDIsNoop(t *testing.T) {
	c, _ := principle.Add(nil, "Keep", "cat", "body", "")
	got, err := principle.Update(c, "p_gone", "x", "y", "z", "")
	if err != nil {
		t.Fatalf("Update with stale id: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Error("stale update mutated the collection")
	}
}

func TestRemoveAndFind(t *testing.T) {
	c, _ := principle.Add(nil, "A", "cat", "body", "")
	id := c[0].ID

	if principle.Find(c, id) == nil {
		t.Fatal("Find missed an existing card")
	}

	c = principle.Remove(c, id)
	if len(c) != 0 {
		t.Errorf("Remove left %d cards", len(c))
	}
	if principle.Find(c, id) != nil {
		t.Error("Find returned a removed card")
	}

	// Absent ids are a no-op.
	c = principle.Remove(c, "p_missing")
	if len(c) != 0 {
		t.Error("Remove of absent id mutated the collection")
	}
}

func TestFilter(t *testing.T) {
	c, _ := principle.Add(nil, "A", "Inner OS", "body", "")
	c, _ = principle.Add(c, "B", "Work", "body", "")

	all := principle.Filter(c, "all")
	if len(all) != 2 {
		t.Errorf("Filter(all) = %d cards, want 2", len(all))
	}
	work := principle.Filter(c, "Work")
	if len(work) != 1 || work[0].Title != "B" {
		t.Errorf("Filter(Work) = %+v", work)
	}
	none := principle.Filter(c, "Nope")
	if len(none) != 0 {
		t.Errorf("Filter(Nope) = %d cards, want 0", len(none))
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	st := store.New(t.TempDir(), nil)

	c, _ := principle.Add(nil, "A", "cat", "body", "tags")
	if err := principle.Save(st, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := principle.Load(st, nil)
	if len(loaded) != 1 || loaded[0].Title != "A" {
		t.Errorf("Load = %+v", loaded)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	st := store.New(t.TempDir(), nil)
	if c := principle.Load(st, nil); len(c) != 0 {
		t.Errorf("Load on empty store = %d cards, want 0", len(c))
	}
}
