package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
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
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndGet(t *testing.T) {
	store := openTestStore(t)

	in := Run{
		Seed:       42,
		Difficulty: "normal",
		GoldMined:  700,
		GoldHeld:   300,
		BlocksDug:  88,
		Bonus:      4,
		Artifact:   true,
		EndReason:  EndArtifact,
		Duration:   93*time.Second + 250*time.Millisecond,
	}

	saved, err := store.SaveRun(in)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("SaveRun() should assign an ID")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatal("SaveRun() should assign a timestamp")
	}

	got, err := store.RunByID(saved.ID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("CreatedAt = %v, expected %v", got.CreatedAt, saved.CreatedAt)
	}
	got.CreatedAt = saved.CreatedAt
	if got != saved {
		t.Errorf("RunByID() = %+v, expected %+v", got, saved)
	}

	if _, err := store.RunByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreBestAndRecent(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	golds := []int{100, 500, 300, 500, 0}
	for i, g := range golds {
		_, err := store.SaveRun(Run{
			Seed:       int64(i),
			Difficulty: "normal",
			GoldMined:  g,
			EndReason:  EndQuit,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns(3)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(best))
	}
	// Ties resolve to the earlier run
	wantSeeds := []int64{1, 3, 2}
	for i, r := range best {
		if r.Seed != wantSeeds[i] {
			t.Errorf("best[%d].Seed = %d, expected %d", i, r.Seed, wantSeeds[i])
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Seed != 4 || recent[1].Seed != 3 {
		t.Errorf("unexpected recent runs: %+v", recent)
	}

	// Non-positive limit falls back to 10
	all, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns(0) failed: %v", err)
	}
	if len(all) != len(golds) {
		t.Errorf("expected %d runs, got %d", len(golds), len(all))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("expected empty stats, got %+v", empty)
	}

	runs := []Run{
		{GoldMined: 200, BlocksDug: 10, Artifact: false, EndReason: EndQuit, Duration: time.Minute},
		{GoldMined: 900, BlocksDug: 40, Artifact: true, EndReason: EndArtifact, Duration: 2 * time.Minute},
		{GoldMined: 0, BlocksDug: 3, Artifact: false, EndReason: EndNewGame, Duration: 30 * time.Second},
	}
	for _, r := range runs {
		r.Difficulty = "hard"
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if st.Runs != 3 || st.Artifacts != 1 {
		t.Errorf("runs=%d artifacts=%d, expected 3 and 1", st.Runs, st.Artifacts)
	}
	if st.TotalGold != 1100 || st.BestGold != 900 || st.TotalDug != 53 {
		t.Errorf("unexpected totals: %+v", st)
	}
	if st.PlayTime != 3*time.Minute+30*time.Second {
		t.Errorf("PlayTime = %v", st.PlayTime)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Difficulty: "easy", EndReason: EndQuit}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(runs))
	}
}
