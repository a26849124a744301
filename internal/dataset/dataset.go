package dataset

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/wonny/noliquid/backend/internal/stats"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultName is the source name reported for the embedded series
const DefaultName = "embedded:default.yaml"

// ErrEmptySeries is returned when a dataset has no months
var ErrEmptySeries = errors.New("dataset has no months")

// Dataset is the static monthly P&L series the dashboard is built from
type Dataset struct {
	Meta   Meta    `yaml:"meta" json:"meta"`
	Months []Month `yaml:"months" json:"months"`
}

// Meta describes the series
type Meta struct {
	Name        string `yaml:"name" json:"name"`
	Currency    string `yaml:"currency" json:"currency"`
	Description string `yaml:"description" json:"description"`
}

// Month is one row of the series
type Month struct {
	Month string  `yaml:"month" json:"month"`
	PnL   float64 `yaml:"pnl" json:"pnl"`
}

// Default returns the embedded series
func Default() (*Dataset, error) {
	ds, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded dataset: %w", err)
	}
	return ds, nil
}

// Load reads path, or the embedded series when path is empty.
// It also returns the source name for logging.
func Load(path string) (*Dataset, string, error) {
	if path == "" {
		ds, err := Default()
		return ds, DefaultName, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read dataset: %w", err)
	}

	ds, err := Parse(data)
	if err != nil {
		return nil, path, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, path, nil
}

// Parse decodes and validates a YAML series.
// Unknown fields are rejected so typos fail loudly.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate reports every problem in the series at once
func (d *Dataset) Validate() error {
	if len(d.Months) == 0 {
		return ErrEmptySeries
	}

	var err error
	seen := make(map[string]int, len(d.Months))
	for i, m := range d.Months {
		label := strings.TrimSpace(m.Month)
		if label == "" {
			err = multierr.Append(err, fmt.Errorf("months[%d]: month label is required", i))
		} else if prev, ok := seen[label]; ok {
			err = multierr.Append(err, fmt.Errorf("months[%d]: duplicate month %q (first at months[%d])", i, label, prev))
		} else {
			seen[label] = i
		}

		if math.IsNaN(m.PnL) || math.IsInf(m.PnL, 0) {
			err = multierr.Append(err, fmt.Errorf("months[%d]: pnl must be a finite number", i))
		}
	}
	return err
}

// Records converts the series for the statistics engine
func (d *Dataset) Records() []stats.MonthlyRecord {
	records := make([]stats.MonthlyRecord, len(d.Months))
	for i, m := range d.Months {
		records[i] = stats.MonthlyRecord{Month: strings.TrimSpace(m.Month), PnL: m.PnL}
	}
	return records
}

// Hash is the SHA-256 of the canonical JSON encoding of d.
// Equal series yield equal hashes, which makes it a memoization key.
func (d *Dataset) Hash() (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("hash dataset: %w", err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Currency returns the series currency, USD when unset
func (d *Dataset) Currency() string {
	if d.Meta.Currency == "" {
		return "USD"
	}
	return d.Meta.Currency
}
