package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreMarkAndHasSeen(t *testing.T) {
	store := openTemp(t)

	seen, err := store.HasSeen("intro")
	if err != nil {
		t.Fatalf("HasSeen() failed: %v", err)
	}
	if seen {
		t.Error("fresh store should not have seen intro")
	}

	if err := store.MarkSeen("intro"); err != nil {
		t.Fatalf("MarkSeen() failed: %v", err)
	}

	seen, err = store.HasSeen("intro")
	if err != nil {
		t.Fatalf("HasSeen() failed: %v", err)
	}
	if !seen {
		t.Error("intro should be seen after MarkSeen")
	}

	if seen, _ := store.HasSeen("garden"); seen {
		t.Error("garden should not be seen")
	}
}

func TestStoreMarkSeenKeepsFirstTimestamp(t *testing.T) {
	store := openTemp(t)

	first := time.UnixMilli(1_700_000_000_000)
	store.now = func() time.Time { return first }
	if err := store.MarkSeen("intro"); err != nil {
		t.Fatal(err)
	}

	store.now = func() time.Time { return first.Add(time.Hour) }
	if err := store.MarkSeen("intro"); err != nil {
		t.Fatal(err)
	}
	if err := store.MarkSeen("garden"); err != nil {
		t.Fatal(err)
	}

	entries, err := store.Seen()
	if err != nil {
		t.Fatalf("Seen() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].SequenceID != "intro" || !entries[0].SeenAt.Equal(first) {
		t.Errorf("entries[0] = %+v, expected intro at %v", entries[0], first)
	}
	if entries[1].SequenceID != "garden" {
		t.Errorf("entries[1] = %+v, expected garden", entries[1])
	}
}

func TestStoreEmptyID(t *testing.T) {
	store := openTemp(t)

	if err := store.MarkSeen(""); err != nil {
		t.Fatalf("MarkSeen(\"\") failed: %v", err)
	}
	entries, _ := store.Seen()
	if len(entries) != 0 {
		t.Errorf("empty id should not be stored, got %v", entries)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTemp(t)

	for _, id := range []string{"a", "b"} {
		if err := store.MarkSeen(id); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	entries, err := store.Seen()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries after Clear, got %d", len(entries))
	}
}

func TestStorePersistence(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store1.MarkSeen("intro"); err != nil {
		t.Fatal(err)
	}
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	seen, err := store2.HasSeen("intro")
	if err != nil {
		t.Fatal(err)
	}
	if !seen {
		t.Error("seen flag did not survive reopening")
	}
}
