package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/dlasim/internal/vec"
)

const (
	metadataFile = "metadata.json"
	pointsFile   = "points.csv"
)

var (
	ErrNotFound = errors.New("storage: run not found")
	ErrCorrupt  = errors.New("storage: corrupt run")
)

type Store struct {
	baseDir string
	clock   func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, clock: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string             `json:"id"`
	Mode          string             `json:"mode"`
	Lattice       string             `json:"lattice"`
	Timestamp     time.Time          `json:"timestamp"`
	Seed          int64              `json:"seed"`
	Stickiness    float64            `json:"stickiness"`
	Width         int                `json:"width,omitempty"`
	Height        int                `json:"height,omitempty"`
	InitRadius    int                `json:"init_radius,omitempty"`
	HalfWidth     int                `json:"half_width,omitempty"`
	TruncatedDraw bool               `json:"truncated_draw,omitempty"`
	Particles     int                `json:"particles"`
	Points        int                `json:"points"`
	Elapsed       time.Duration      `json:"elapsed_ns"`
	Interrupted   bool               `json:"interrupted"`
	Metrics       map[string]float64 `json:"metrics"`
}

// Save archives one run under a new id of the form <mode>_<unix-nanos>.
// Non-finite metrics are dropped since JSON cannot carry them. A run that
// fails to write leaves no directory behind.
func (s *Store) Save(meta RunMetadata, points []vec.Vec2) (string, error) {
	return s.save(meta, points, writeRun)
}

func (s *Store) save(meta RunMetadata, points []vec.Vec2, write func(string, RunMetadata, []vec.Vec2) error) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}

	now := s.clock()
	var runID, runDir string
	for {
		runID = fmt.Sprintf("%s_%d", meta.Mode, now.UnixNano())
		runDir = filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", err
		}
		// same clock reading as an earlier run
		now = now.Add(time.Nanosecond)
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Points = len(points)
	meta.Metrics = finite(meta.Metrics)

	if err := write(runDir, meta, points); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return runID, nil
}

func writeRun(runDir string, meta RunMetadata, points []vec.Vec2) error {
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return err
	}
	return writePoints(filepath.Join(runDir, pointsFile), points)
}

func writePoints(path string, points []vec.Vec2) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	for _, p := range points {
		if _, err := w.WriteString(p.String() + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeJSON(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func finite(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[k] = v
		}
	}
	return out
}

// List returns every readable run, oldest first. Directories without valid
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.runDir(runID), metadataFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, runID, err)
	}

	return &meta, nil
}

// LoadPoints reads the archived seed stream back in growth order.
func (s *Store) LoadPoints(runID string) ([]vec.Vec2, error) {
	f, err := os.Open(filepath.Join(s.runDir(runID), pointsFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}
	defer f.Close()

	points := make([]vec.Vec2, 0)
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		p, err := vec.Parse2(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", ErrCorrupt, runID, line, err)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// runDir keeps ids from escaping the base directory.
func (s *Store) runDir(runID string) string {
	return filepath.Join(s.baseDir, filepath.Base(filepath.Clean("/"+runID)))
}

type ExportData struct {
	RunMetadata
	Seeds []vec.Vec2 `json:"seeds"`
}

// ExportJSON writes a run's metadata and seeds as a single JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	points, err := s.LoadPoints(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Seeds: points})
}
