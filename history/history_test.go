package history

import (
	"errors"
	"testing"

	"github.com/hupe1980/upcheck/core"
	"github.com/hupe1980/upcheck/version"
)

func TestInMemoryStore_AppendAndGet(t *testing.T) {
	store := NewInMemoryStore()

	rec := Record{Result: core.ResultAvailable, Version: "1.3.0", Tag: version.TagRelease, Provider: "GitHub"}
	if err := store.Append(rec); err != nil {
		t.Fatal(err)
	}

	latest, err := store.Latest()
	if err != nil {
		t.Fatal(err)
	}
	if latest.ID == "" || latest.Time.IsZero() {
		t.Fatalf("Append did not assign identity fields: %+v", latest)
	}
	if latest.Version != "1.3.0" || latest.Provider != "GitHub" {
		t.Fatalf("unexpected record: %+v", latest)
	}

	got, err := store.Get(latest.ID)
	if err != nil || got.ID != latest.ID {
		t.Fatalf("Get(%q) = %+v, %v", latest.ID, got, err)
	}
}

func TestInMemoryStore_ListInsertionOrder(t *testing.T) {
	store := NewInMemoryStore()
	for _, r := range []core.Result{core.ResultLatest, core.ResultAvailable, core.ResultFailConnection} {
		if err := store.Append(Record{Result: r}); err != nil {
			t.Fatal(err)
		}
	}

	records, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("List() returned %d records, want 3", len(records))
	}
	if records[0].Result != core.ResultLatest || records[2].Result != core.ResultFailConnection {
		t.Fatalf("List() out of order: %+v", records)
	}
}

func TestInMemoryStore_NotFound(t *testing.T) {
	store := NewInMemoryStore()

	if _, err := store.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on empty store: %v, want ErrNotFound", err)
	}
	if _, err := store.Latest(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Latest on empty store: %v, want ErrNotFound", err)
	}
}
