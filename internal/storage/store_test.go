package storage

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/attiview/internal/attitude"
)

func testRecords() []Record {
	return []Record{
		{TMs: 0, Sample: attitude.Sample{Z: 1}},
		{TMs: 100, Sample: attitude.Sample{X: -0.5, Y: 0.1, Z: 0.86}, Attitude: attitude.Attitude{RollDeg: 6.63, PitchDeg: 30.0}},
		{TMs: 200, Sample: attitude.Sample{Y: 1}, Attitude: attitude.Attitude{RollDeg: 90}},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	id, err := st.Save(SessionMetadata{Model: "ship", Preset: "panel", Width: 170, Height: 96, IntervalMs: 100, Source: "sweep"}, testRecords())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" {
		t.Error("expected non-empty session id")
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Model != "ship" {
		t.Errorf("expected model 'ship', got '%s'", meta.Model)
	}
	if meta.Name != "ship" {
		t.Errorf("expected name to default to model, got '%s'", meta.Name)
	}
	if meta.SampleCount != 3 {
		t.Errorf("expected 3 samples, got %d", meta.SampleCount)
	}
	if meta.ID != id {
		t.Errorf("expected id %s, got %s", id, meta.ID)
	}

	records, err := st.LoadSamples(id)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	want := testRecords()
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i := range want {
		if records[i].TMs != want[i].TMs {
			t.Errorf("record %d: expected t %d, got %d", i, want[i].TMs, records[i].TMs)
		}
		if math.Abs(records[i].Sample.X-want[i].Sample.X) > 1e-6 ||
			math.Abs(records[i].Attitude.RollDeg-want[i].Attitude.RollDeg) > 1e-6 {
			t.Errorf("record %d: expected %+v, got %+v", i, want[i], records[i])
		}
	}
}

func TestStoreSaveSameSecond(t *testing.T) {
	st := New(t.TempDir())
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		id, err := st.Save(SessionMetadata{Model: "ship"}, testRecords())
		if err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
		if seen[id] {
			t.Fatalf("session id %s reused", id)
		}
		seen[id] = true
	}
	for id := range seen {
		meta, err := st.Load(id)
		if err != nil {
			t.Fatalf("load %s failed: %v", id, err)
		}
		if meta.ID != id || meta.SampleCount != 3 {
			t.Errorf("session %s loaded as %+v", id, meta)
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 sessions, got %d", len(runs))
	}

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := st.Save(SessionMetadata{Name: "a", Model: "ship"}, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := st.Save(SessionMetadata{Name: "b", Model: "cube"}, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := os.Mkdir(filepath.Join(st.Dir(), "stray"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 sessions, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	id, err := st.Save(SessionMetadata{Model: "ship"}, testRecords())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "samples.csv"} {
		if _, err := os.Stat(filepath.Join(tmpDir, id, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, id, "samples.csv"))
	if err != nil {
		t.Fatal(err)
	}
	header := "t_ms,accel_x,accel_y,accel_z,roll_deg,pitch_deg\n"
	if len(data) < len(header) || string(data[:len(header)]) != header {
		t.Errorf("unexpected header: %q", data)
	}
}

func TestStoreMissingSession(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope_1"); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
	if _, err := st.LoadSamples("nope_1"); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestLoadSamplesSkipsMalformedRows(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "manual_1")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	csv := "t_ms,accel_x,accel_y,accel_z,roll_deg,pitch_deg\n" +
		"0,0,0,1,0,0\n" +
		"x,0,0,1,0,0\n" +
		"100,0,0\n" +
		"200,0,1,0,90,0\n"
	if err := os.WriteFile(filepath.Join(dir, "samples.csv"), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := New(tmpDir).LoadSamples("manual_1")
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 valid records, got %d", len(records))
	}
	if records[1].TMs != 200 || records[1].Attitude.RollDeg != 90 {
		t.Errorf("unexpected record: %+v", records[1])
	}
}

func TestSeriesAndSamples(t *testing.T) {
	recs := testRecords()
	roll, pitch := Series(recs)
	if len(roll) != 3 || roll[2] != 90 || pitch[1] != 30 {
		t.Errorf("unexpected series: %v %v", roll, pitch)
	}
	samples := Samples(recs)
	if samples[2] != (attitude.Sample{Y: 1}) {
		t.Errorf("unexpected sample: %+v", samples[2])
	}
}
