package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/trilho/track"
)

const scenarioYAML = `
track:
  min_cm: 0
  max_cm: 600
  min_unit: 0
  max_unit: 8520
  window_width_cm: 60
zones:
  - id: a
    start_cm: 80
    width_cm: 60
    padding: 12
    exit_padding_cm: 20
  - id: b
    name: Bravo
    content: shared
    start_cm: 200
    width_cm: 10
    reference: CENTER
    placement: continuous
    fade_in_seconds: 0.5
`

func TestParseScenario(t *testing.T) {
	c, err := Parse([]byte(scenarioYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Physical.MaxCm != 600 || c.Virtual.MaxUnit != 8520 || c.WindowWidthCm != 60 {
		t.Fatalf("unexpected track %+v %+v %v", c.Physical, c.Virtual, c.WindowWidthCm)
	}
	if len(c.Zones) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(c.Zones))
	}

	a := c.Zones[0]
	if a.EnterPaddingCm != 12 || a.ExitPaddingCm != 20 {
		t.Fatalf("legacy padding fallback: enter=%v exit=%v", a.EnterPaddingCm, a.ExitPaddingCm)
	}
	if a.Name != "a" || a.Key() != "a" || a.Reference != track.ReferenceLeftEdge || a.Placement != track.PlacementOff {
		t.Fatalf("defaults not applied: %+v", a)
	}

	b, ok := c.Zone("b")
	if !ok {
		t.Fatalf("zone b missing")
	}
	if b.Index != 1 || b.Key() != "shared" || b.Reference != track.ReferenceCenter || b.Placement != track.PlacementContinuous {
		t.Fatalf("unexpected zone b %+v", b)
	}
}

func TestValidateRejects(t *testing.T) {
	zone := track.Zone{ID: "z", WidthCm: 10, Reference: track.ReferenceLeftEdge, Placement: track.PlacementOff}
	phys := track.PhysicalRange{MinCm: 0, MaxCm: 600}
	virt := track.VirtualRange{MaxUnit: 100}

	cases := []struct {
		name string
		c    *Catalog
	}{
		{"nil", nil},
		{"degenerate_range", New(track.PhysicalRange{MinCm: 10, MaxCm: 10}, virt, 60, zone)},
		{"zero_window", New(phys, virt, 0, zone)},
		{"duplicate_ids", New(phys, virt, 60, zone, zone)},
		{"negative_width", New(phys, virt, 60, track.Zone{ID: "n", WidthCm: -5, Reference: track.ReferenceCenter, Placement: track.PlacementOff})},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.c.Validate()
			if !errors.Is(err, track.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("track: [")); err == nil {
		t.Fatalf("expected unmarshal error")
	}
	if _, err := Parse([]byte("track:\n  min_cm: 5\n  max_cm: 5\n  window_width_cm: 60\n")); !errors.Is(err, track.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), DefaultName))
	if err != nil {
		t.Fatalf("Load default: %v", err)
	}
	if len(c.Zones) == 0 {
		t.Fatalf("embedded default has no zones")
	}
	dep, ok := c.Zone("depoimento")
	if !ok || dep.EnterPaddingCm != 10 || dep.ExitPaddingCm != 10 {
		t.Fatalf("expected legacy padding on depoimento, got %+v", dep)
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Zones) != 2 {
		t.Fatalf("expected the disk catalog, got %d zones", len(c.Zones))
	}
	if _, ok := ModTime(path); !ok {
		t.Fatalf("expected a mod time for %s", path)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for a catalog that exists nowhere")
	}
}

func TestWatcherReportsCatalogWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	_ = os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)
	path := filepath.Join(dir, "zones.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if !SameFile(name, path) {
			t.Fatalf("unexpected event for %s", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatalf("no event for %s", path)
	}
}

func TestWatcherReportsOnceAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := newWatcher(150*time.Millisecond, dir)
	if err != nil {
		t.Fatalf("newWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "zones.yaml")
	if err := os.WriteFile(path, []byte("track: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, []byte(scenarioYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if !SameFile(name, path) {
			t.Fatalf("unexpected event for %s", name)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := Parse(data); err != nil {
			t.Fatalf("event arrived before the final write: %v", err)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatalf("no event for %s", path)
	}

	select {
	case name := <-w.Events:
		t.Fatalf("burst reported twice: %s", name)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcherReportsScripts(t *testing.T) {
	dir := t.TempDir()
	w, err := newWatcher(20*time.Millisecond, dir, dir)
	if err != nil {
		t.Fatalf("newWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "walk.tengo")
	if err := os.WriteFile(path, []byte("position := func(t) { return t }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case name := <-w.Events:
		if !SameFile(name, path) {
			t.Fatalf("unexpected event for %s", name)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no event for %s", path)
	}
}
