package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/attiview/internal/attitude"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

// ErrNoSession is returned when a session directory has no metadata.
var ErrNoSession = errors.New("storage: session not found")

var samplesHeader = []string{"t_ms", "accel_x", "accel_y", "accel_z", "roll_deg", "pitch_deg"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

// Record is one accepted tick: the raw sample and the attitude derived
// from it, stamped with the host clock.
type Record struct {
	TMs      uint64
	Sample   attitude.Sample
	Attitude attitude.Attitude
}

type SessionMetadata struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Model       string    `json:"model"`
	Preset      string    `json:"preset,omitempty"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	IntervalMs  int       `json:"interval_ms"`
	Source      string    `json:"source"`
	Projection  string    `json:"projection"`
	Timestamp   time.Time `json:"timestamp"`
	SampleCount int       `json:"sample_count"`
}

// Save writes a new session directory and returns its id. The id, sample
// count and timestamp in meta are filled in.
func (s *Store) Save(meta SessionMetadata, records []Record) (string, error) {
	if meta.Name == "" {
		meta.Name = meta.Model
	}
	now := time.Now()
	id, dir, err := s.claim(fmt.Sprintf("%s_%d", meta.Name, now.Unix()))
	if err != nil {
		return "", err
	}

	meta.ID = id
	meta.Timestamp = now
	meta.SampleCount = len(records)

	if err := writeJSON(filepath.Join(dir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeSamples(filepath.Join(dir, samplesFile), records); err != nil {
		return "", err
	}
	return id, nil
}

// claim creates a fresh session directory named base, or base_2, base_3
// and so on when sessions are saved within the same second.
func (s *Store) claim(base string) (string, string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", "", err
	}
	id := base
	for n := 2; ; n++ {
		dir := filepath.Join(s.baseDir, id)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return id, dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", "", err
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSamples(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(samplesHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.FormatUint(r.TMs, 10),
			formatFloat(r.Sample.X),
			formatFloat(r.Sample.Y),
			formatFloat(r.Sample.Z),
			formatFloat(r.Attitude.RollDeg),
			formatFloat(r.Attitude.PitchDeg),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// List returns every readable session, oldest first. Directories without
// valid metadata are skipped.
func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMetadata{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		sessions = append(sessions, *meta)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.Before(sessions[j].Timestamp)
	})
	return sessions, nil
}

func (s *Store) Load(id string) (*SessionMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoSession, id)
		}
		return nil, err
	}

	var meta SessionMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse %s metadata: %w", id, err)
	}
	return &meta, nil
}

// LoadSamples reads the samples table back. Malformed rows are skipped.
func (s *Store) LoadSamples(id string) ([]Record, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, samplesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoSession, id)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []Record{}, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(samplesHeader) {
			continue
		}
		t, err := strconv.ParseUint(row[0], 10, 64)
		if err != nil {
			continue
		}
		var vals [5]float64
		ok := true
		for j := range vals {
			if vals[j], err = strconv.ParseFloat(row[j+1], 64); err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		records = append(records, Record{
			TMs:      t,
			Sample:   attitude.Sample{X: vals[0], Y: vals[1], Z: vals[2]},
			Attitude: attitude.Attitude{RollDeg: vals[3], PitchDeg: vals[4]},
		})
	}
	return records, nil
}

// Samples strips the records down to their raw accelerometer readings,
// suitable for attitude.NewReplay.
func Samples(records []Record) []attitude.Sample {
	out := make([]attitude.Sample, len(records))
	for i, r := range records {
		out[i] = r.Sample
	}
	return out
}

// Series extracts roll and pitch columns.
func Series(records []Record) (roll, pitch []float64) {
	roll = make([]float64, len(records))
	pitch = make([]float64, len(records))
	for i, r := range records {
		roll[i] = r.Attitude.RollDeg
		pitch[i] = r.Attitude.PitchDeg
	}
	return roll, pitch
}
