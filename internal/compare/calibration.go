package compare

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/qrt-closure/qrtrecon/internal/model"
)

// ErrZeroObserved is returned when deriving a factor from a zero observed
// total.
var ErrZeroObserved = errors.New("cannot derive calibration from zero observed total")

// Calibration is an explicit, expiring correction record. It replaces the
// anonymous target÷actual multipliers the old scripts baked into their
// aggregation: the factor is named, attributed and time-boxed, and the
// pipeline warns whenever one is applied.
type Calibration struct {
	ID          string          `yaml:"id"`
	Category    model.Category  `yaml:"category"`
	Factor      decimal.Decimal `yaml:"factor"`
	DerivedFrom string          `yaml:"derived_from"`
	CreatedAt   time.Time       `yaml:"created_at"`
	ValidUntil  time.Time       `yaml:"valid_until"`
}

// Expired reports whether the record is past its validity window at now.
func (c Calibration) Expired(now time.Time) bool {
	return now.After(c.ValidUntil)
}

// Apply multiplies an observed amount by the calibration factor.
func (c Calibration) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.Factor)
}

// Derive creates a calibration from a target/observed pair.
func Derive(category model.Category, target, observed decimal.Decimal, derivedFrom string, validFor time.Duration, now time.Time) (Calibration, error) {
	if observed.IsZero() {
		return Calibration{}, ErrZeroObserved
	}
	return Calibration{
		ID:          uuid.NewString(),
		Category:    category,
		Factor:      target.Div(observed).Round(8),
		DerivedFrom: derivedFrom,
		CreatedAt:   now,
		ValidUntil:  now.Add(validFor),
	}, nil
}

// calibrationFile is the on-disk YAML shape.
type calibrationFile struct {
	Calibrations []Calibration `yaml:"calibrations"`
}

// Store persists calibrations to a YAML file.
type Store struct {
	path string
}

// NewStore creates a Store at path. The file may not exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads all calibrations. A missing file is an empty store.
func (s *Store) Load() ([]Calibration, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading calibrations: %w", err)
	}

	var f calibrationFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing calibrations: %w", err)
	}
	return f.Calibrations, nil
}

// Add appends a calibration and rewrites the file.
func (s *Store) Add(c Calibration) error {
	existing, err := s.Load()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(calibrationFile{Calibrations: append(existing, c)})
	if err != nil {
		return fmt.Errorf("marshaling calibrations: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing calibrations: %w", err)
	}
	return nil
}

// Active returns the most recently created unexpired calibration for a
// category.
func (s *Store) Active(category model.Category, now time.Time) (Calibration, bool, error) {
	all, err := s.Load()
	if err != nil {
		return Calibration{}, false, err
	}

	var best Calibration
	found := false
	for _, c := range all {
		if c.Category != category || c.Expired(now) {
			continue
		}
		if !found || c.CreatedAt.After(best.CreatedAt) {
			best = c
			found = true
		}
	}
	return best, found, nil
}
