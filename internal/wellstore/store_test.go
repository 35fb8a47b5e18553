package wellstore

import (
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banshee-data/welllog.report/internal/las"
)

const storeLAS = `~Well
WELL.   TEST WELL 7 : Well name
NULL.   -999.25 :
~Curve
DEPT.M    : Depth
GR  .GAPI : Gamma Ray
~ASCII
1000.0  45.5
1000.5 -999.25
`

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "wells.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func putTestWell(t *testing.T, store *Store, filename string) string {
	t.Helper()
	doc, err := las.Parse(strings.NewReader(storeLAS))
	require.NoError(t, err)
	id, err := store.Put(doc, filename, []byte(storeLAS))
	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func TestPutGetRoundtrip(t *testing.T) {
	store := openTestStore(t)
	id := putTestWell(t, store, "test.las")

	doc, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if doc.SampleCount() != 2 {
		t.Errorf("SampleCount() = %d, want 2", doc.SampleCount())
	}
	gr, ok := doc.Curve("GR")
	if !ok {
		t.Fatal("GR curve missing after roundtrip")
	}
	if gr.Samples[0] != 45.5 || gr.Samples[1] != las.NullValue {
		t.Errorf("GR samples = %v", gr.Samples)
	}
	well, _ := doc.Well("WELL")
	if well != "TEST WELL 7" {
		t.Errorf("well name = %q, want 'TEST WELL 7'", well)
	}
}

func TestGetUnknownID(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Get("no-such-id")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Get() error = %v, want sql.ErrNoRows", err)
	}
}

func TestRaw(t *testing.T) {
	store := openTestStore(t)
	id := putTestWell(t, store, "test.las")

	raw, filename, err := store.Raw(id)
	if err != nil {
		t.Fatalf("Raw() error = %v", err)
	}
	if string(raw) != storeLAS {
		t.Error("Raw() does not match the uploaded bytes")
	}
	if filename != "test.las" {
		t.Errorf("Raw() filename = %q, want test.las", filename)
	}
}

func TestListRecent(t *testing.T) {
	store := openTestStore(t)
	putTestWell(t, store, "a.las")
	putTestWell(t, store, "b.las")

	wells, err := store.ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(wells) != 2 {
		t.Fatalf("ListRecent() = %d wells, want 2", len(wells))
	}
	for _, w := range wells {
		if w.WellName != "TEST WELL 7" {
			t.Errorf("WellName = %q, want 'TEST WELL 7'", w.WellName)
		}
		if w.Samples != 2 || w.Curves != 2 {
			t.Errorf("record counts = %d samples / %d curves, want 2/2", w.Samples, w.Curves)
		}
		if w.ID == "" {
			t.Error("record missing ID")
		}
	}

	// Out-of-range limits fall back to the default instead of erroring.
	if _, err := store.ListRecent(-1); err != nil {
		t.Errorf("ListRecent(-1) error = %v", err)
	}
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)
	id := putTestWell(t, store, "test.las")

	if err := store.Delete(id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(id); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Get() after delete = %v, want sql.ErrNoRows", err)
	}

	// Deleting an unknown handle reports it the same way Get does.
	if err := store.Delete(id); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Delete() of unknown id = %v, want sql.ErrNoRows", err)
	}
}
