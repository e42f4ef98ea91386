package hunter

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	st := NewStore(dir)
	st.Load()
	return st, dir
}

func TestLoadSeedsWhenEmpty(t *testing.T) {
	st, _ := newTestStore(t)

	sectors := st.Sectors()
	if len(sectors) == 0 {
		t.Fatal("Load() on an empty dir produced no sectors")
	}
	if st.ActiveID() != sectors[0].ID {
		t.Errorf("active = %q, want the first sector %q", st.ActiveID(), sectors[0].ID)
	}
}

func TestLoadIgnoresCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, sectorsFilename), []byte("{corrupt"), 0644); err != nil {
		t.Fatal(err)
	}

	st := NewStore(dir)
	st.Load()
	if len(st.Sectors()) == 0 {
		t.Error("Load() with a corrupt file should fall back to the seed collection")
	}
}

func TestLoadMigratesLegacyFile(t *testing.T) {
	dir := t.TempDir()
	legacy := []Sector{sampleSector()}
	data, err := EncodeBackup(legacy)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "hunter_sectors_v2.json"), data, 0644); err != nil {
		t.Fatal(err)
	}

	st := NewStore(dir)
	st.Load()

	got := st.Sectors()
	if len(got) != 1 || got[0].ID != "thermal_mgmt" {
		t.Fatalf("Load() = %d sectors, want the migrated legacy one", len(got))
	}
	// The migration must have written the canonical file.
	if _, err := os.Stat(filepath.Join(dir, sectorsFilename)); err != nil {
		t.Errorf("canonical file not written after migration: %v", err)
	}

	// A second load must find the canonical file first.
	st2 := NewStore(dir)
	st2.Load()
	if got := st2.Sectors(); len(got) != 1 || !got[0].Equal(legacy[0]) {
		t.Error("reload after migration lost data")
	}
}

func TestAddUpdateRemoveSector(t *testing.T) {
	st, _ := newTestStore(t)
	sec := sampleSector()

	if err := st.AddSector(sec); err != nil {
		t.Fatalf("AddSector() = %v", err)
	}
	if err := st.AddSector(sec); err == nil {
		t.Error("AddSector() accepted a duplicate id")
	}

	sec.Name = "更名後的散熱族群"
	if err := st.UpdateSector(sec); err != nil {
		t.Fatalf("UpdateSector() = %v", err)
	}
	got, ok := st.Sector(sec.ID)
	if !ok || got.Name != sec.Name {
		t.Errorf("Sector() name = %q, want %q", got.Name, sec.Name)
	}

	if err := st.RemoveSector(sec.ID); err != nil {
		t.Fatalf("RemoveSector() = %v", err)
	}
	if _, ok := st.Sector(sec.ID); ok {
		t.Error("Sector() still found after RemoveSector()")
	}
	if err := st.RemoveSector(sec.ID); err == nil {
		t.Error("RemoveSector() on an unknown id should fail")
	}
}

func TestRemoveActiveSectorFallsBack(t *testing.T) {
	st, _ := newTestStore(t)
	first := st.Sectors()[0]

	if err := st.RemoveSector(first.ID); err != nil {
		t.Fatalf("RemoveSector() = %v", err)
	}
	remaining := st.Sectors()
	if len(remaining) == 0 {
		t.Skip("seed collection has a single sector")
	}
	if st.ActiveID() != remaining[0].ID {
		t.Errorf("active = %q, want fallback to %q", st.ActiveID(), remaining[0].ID)
	}
}

func TestSetActiveUnknownFallsBack(t *testing.T) {
	st, _ := newTestStore(t)
	first := st.Sectors()[0]

	st.SetActive("no_such_sector")
	if st.ActiveID() != first.ID {
		t.Errorf("active = %q, want fallback to first %q", st.ActiveID(), first.ID)
	}
}

func TestReplaceAllRejectsDuplicatesUntouched(t *testing.T) {
	st, _ := newTestStore(t)
	before := st.Sectors()

	dup := []Sector{sampleSector(), sampleSector()}
	if err := st.ReplaceAll(dup); err == nil {
		t.Fatal("ReplaceAll() accepted duplicate sector ids")
	}
	after := st.Sectors()
	if len(after) != len(before) {
		t.Error("failed ReplaceAll() modified the collection")
	}
}

func TestReplaceAllInstallsAndPersists(t *testing.T) {
	st, dir := newTestStore(t)

	if err := st.ReplaceAll([]Sector{sampleSector()}); err != nil {
		t.Fatalf("ReplaceAll() = %v", err)
	}
	if st.ActiveID() != "thermal_mgmt" {
		t.Errorf("active = %q, want the first imported sector", st.ActiveID())
	}

	st2 := NewStore(dir)
	st2.Load()
	if got := st2.Sectors(); len(got) != 1 || got[0].ID != "thermal_mgmt" {
		t.Error("ReplaceAll() was not persisted")
	}
}

func TestMergeQuotesLocality(t *testing.T) {
	st, _ := newTestStore(t)
	if err := st.ReplaceAll([]Sector{sampleSector()}); err != nil {
		t.Fatal(err)
	}

	patches := []QuotePatch{
		{Symbol: "3017", Price: fptr(900), ChangePercent: pptr(2.5), Volume: sptr("31.0K"), IsRealData: bptr(true)},
		{Symbol: "0000", Price: fptr(1)}, // untracked symbol
	}
	applied, err := st.MergeQuotes("thermal_mgmt", patches)
	if err != nil {
		t.Fatalf("MergeQuotes() = %v", err)
	}
	if applied != 1 {
		t.Fatalf("applied = %d, want 1", applied)
	}

	sec, _ := st.Sector("thermal_mgmt")
	patched := sec.Stock("3017")
	if patched.Price != 900 || patched.Volume != "31.0K" || !patched.IsRealData {
		t.Errorf("patched stock = %+v", patched)
	}
	if got, want := patched.HunterScore, HunterScore(2.5, 0); got != want {
		t.Errorf("hunter score not recomputed: got %d, want %d", got, want)
	}
	// The patch must not leak into fields it does not carry.
	if patched.ConfidenceScore != 88 || patched.SupportPrice != 807.5 {
		t.Errorf("derived fields modified by a quote patch: %+v", patched)
	}
	// Nor into the other stock.
	if other := sec.Stock("3324"); other.Price != 620 {
		t.Errorf("unpatched stock modified: %+v", other)
	}
}

func TestMergeQuotesUnknownSectorIsNoop(t *testing.T) {
	st, _ := newTestStore(t)

	applied, err := st.MergeQuotes("gone", []QuotePatch{{Symbol: "3017", Price: fptr(1)}})
	if err != nil {
		t.Fatalf("MergeQuotes() = %v", err)
	}
	if applied != 0 {
		t.Errorf("applied = %d, want 0 for an unknown sector", applied)
	}
}
