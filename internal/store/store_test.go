package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lifeos/internal/store"
)

func TestGetMissingKey(t *testing.T) {
	st := store.New(t.TempDir(), nil)
	data, err := st.Get("jinsei_os_profile")
	if err != nil {
		t.Fatalf("Get on missing key: %v", err)
	}
	if data != nil {
		t.Errorf("Get on missing key = %q, want nil", data)
	}
}

func TestPutAndGet(t *testing.T) {
	st := store.New(t.TempDir(), nil)
	want := []byte(`{"name":"test"}`)

	if err := st.Put("jinsei_os_profile", want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := st.Get("jinsei_os_profile")
	if err != nil {
		t.Fatalf("Get after Put: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Get = %q, want %q", got, want)
	}
}

func TestPutJSONAndGetJSON(t *testing.T) {
	st := store.New(t.TempDir(), nil)

	type record struct {
		Name string `json:"name"`
	}

	if err := st.PutJSON("k", record{Name: "x"}); err != nil {
		t.Fatalf("PutJSON: %v", err)
	}

	var got record
	found, err := st.GetJSON("k", &got)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if !found {
		t.Fatal("GetJSON found = false after PutJSON")
	}
	if got.Name != "x" {
		t.Errorf("got.Name = %q, want x", got.Name)
	}
}

func TestGetJSONMissingKey(t *testing.T) {
	st := store.New(t.TempDir(), nil)

	var v map[string]any
	found, err := st.GetJSON("absent", &v)
	if err != nil {
		t.Fatalf("GetJSON on missing key: %v", err)
	}
	if found {
		t.Error("GetJSON reported found for a missing key")
	}
}

func TestGetJSONCorruptBacksUp(t *testing.T) {
	dir := t.TempDir()
	st := store.New(dir, nil)

	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	var v map[string]any
	_, err := st.GetJSON("bad", &v)
	if !errors.Is(err, store.ErrCorrupt) {
		t.Fatalf("GetJSON on corrupt data: %v, want ErrCorrupt", err)
	}

	// The corrupt file is backed up so the next write starts clean.
	if _, err := os.Stat(path + ".corrupt"); os.IsNotExist(err) {
		t.Error("expected backup file to exist after corrupt JSON")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt file should have been moved aside")
	}
}

func TestPutOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	st := store.New(dir, nil)

	if err := st.Put("k", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := st.Put("k", []byte("two")); err != nil {
		t.Fatal(err)
	}

	got, err := st.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "two" {
		t.Errorf("Get = %q, want two", got)
	}

	// No temp file left behind.
	if _, err := os.Stat(filepath.Join(dir, "k.json.tmp")); !os.IsNotExist(err) {
		t.Error("temp file left behind after Put")
	}
}

func TestDelete(t *testing.T) {
	st := store.New(t.TempDir(), nil)

	if err := st.Put("k", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := st.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	data, err := st.Get("k")
	if err != nil || data != nil {
		t.Errorf("Get after Delete = (%q, %v), want (nil, nil)", data, err)
	}

	// Deleting a missing key is a no-op.
	if err := st.Delete("absent"); err != nil {
		t.Errorf("Delete on missing key: %v", err)
	}
}
