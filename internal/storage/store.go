package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortviz/internal/step"
)

// Trace is a replayable recording of one generator run.
type Trace struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Mode      string             `json:"mode"`
	Input     []int              `json:"input"`
	Target    *int               `json:"target,omitempty"`
	Created   time.Time          `json:"created"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
	Steps     step.Sequence      `json:"steps"`
}

func NewTrace(algorithm string, mode step.Mode, input []int, seq step.Sequence) *Trace {
	return &Trace{
		ID:        fmt.Sprintf("%s_%s", algorithm, uuid.NewString()[:8]),
		Algorithm: algorithm,
		Mode:      mode.String(),
		Input:     append([]int(nil), input...),
		Created:   time.Now().UTC(),
		Steps:     seq,
	}
}

// Store keeps traces under baseDir, one directory per run.
type Store struct {
	baseDir string
	create  func(name string) (io.WriteCloser, error)
}

func New(baseDir string) *Store {
	return &Store{
		baseDir: baseDir,
		create:  func(name string) (io.WriteCloser, error) { return os.Create(name) },
	}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Save writes trace.json and steps.csv for tr and returns its id.
func (s *Store) Save(tr *Trace) (string, error) {
	runDir := filepath.Join(s.baseDir, tr.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := s.writeFile(filepath.Join(runDir, "trace.json"), func(w io.Writer) error {
		return WriteJSON(w, tr)
	}); err != nil {
		return "", err
	}
	if err := s.writeFile(filepath.Join(runDir, "steps.csv"), func(w io.Writer) error {
		return WriteCSV(w, tr.Steps)
	}); err != nil {
		return "", err
	}

	return tr.ID, nil
}

// writeFile creates path and runs write against it. A failed close is
// returned when the write itself succeeded.
func (s *Store) writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := s.create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
		}
	}()
	return write(f)
}

// Summary is a trace without its steps.
type Summary struct {
	ID        string    `json:"id"`
	Algorithm string    `json:"algorithm"`
	Mode      string    `json:"mode"`
	Size      int       `json:"size"`
	Steps     int       `json:"steps"`
	Created   time.Time `json:"created"`
}

// List returns the stored runs, newest first. Unreadable runs are skipped.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Summary{}, nil
		}
		return nil, err
	}

	runs := make([]Summary, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		tr, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, Summary{
			ID:        tr.ID,
			Algorithm: tr.Algorithm,
			Mode:      tr.Mode,
			Size:      len(tr.Input),
			Steps:     len(tr.Steps),
			Created:   tr.Created,
		})
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Created.After(runs[j].Created) })
	return runs, nil
}

func (s *Store) Load(runID string) (*Trace, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trace.json"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// LoadFile reads a trace exported outside the store.
func LoadFile(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

func decodeTrace(data []byte) (*Trace, error) {
	var tr Trace
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, err
	}
	if len(tr.Steps) == 0 {
		return nil, fmt.Errorf("trace %s has no steps", tr.ID)
	}
	return &tr, nil
}
