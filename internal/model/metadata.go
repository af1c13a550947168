// Package model loads the pre-trained ONNX obesity classifier and exposes it
// behind a small Predictor interface. The artifact is opaque: it consumes an
// encoded normalized record and returns an integer class code.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/healthml/obesity-predictor/internal/domain/record"
)

// Feature kinds declared by the metadata file.
const (
	kindNumeric     = "numeric"
	kindCategorical = "categorical"
)

// FeatureSpec describes one input column of the trained pipeline.
type FeatureSpec struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	// Categories holds the training vocabulary for categorical features, in
	// encoding order. Empty for numeric features.
	Categories []string `json:"categories,omitempty"`
}

// Metadata describes the model artifact: tensor shapes, the output class
// labels, and the per-column encoding of the input vector.
type Metadata struct {
	InputShape  []int64       `json:"input_shape"`
	OutputShape []int64       `json:"output_shape"`
	Classes     []string      `json:"classes"`
	Features    []FeatureSpec `json:"features"`
}

// LoadMetadata reads and validates the metadata file. The feature list must
// match the fixed column order of the normalized record exactly: the model is
// positionally sensitive, so a drifted metadata file must fail the load.
func LoadMetadata(path string) (*Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrLoad, path, err)
	}

	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrMetadata, path, err)
	}
	if err := meta.validate(); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (m *Metadata) validate() error {
	if len(m.Features) != len(record.Columns) {
		return fmt.Errorf("%w: expected %d features, got %d",
			ErrMetadata, len(record.Columns), len(m.Features))
	}
	for i, f := range m.Features {
		if f.Name != record.Columns[i] {
			return fmt.Errorf("%w: feature %d is %q, want column %q",
				ErrMetadata, i, f.Name, record.Columns[i])
		}
		switch f.Kind {
		case kindNumeric:
			if len(f.Categories) > 0 {
				return fmt.Errorf("%w: numeric feature %q declares categories", ErrMetadata, f.Name)
			}
		case kindCategorical:
			if len(f.Categories) == 0 {
				return fmt.Errorf("%w: categorical feature %q has no categories", ErrMetadata, f.Name)
			}
		default:
			return fmt.Errorf("%w: feature %q has unknown kind %q", ErrMetadata, f.Name, f.Kind)
		}
	}
	if len(m.Classes) == 0 {
		return fmt.Errorf("%w: no output classes declared", ErrMetadata)
	}
	if len(m.InputShape) != 2 || m.InputShape[1] != int64(len(m.Features)) {
		return fmt.Errorf("%w: input_shape %v does not fit %d features",
			ErrMetadata, m.InputShape, len(m.Features))
	}
	if len(m.OutputShape) != 2 || m.OutputShape[1] != int64(len(m.Classes)) {
		return fmt.Errorf("%w: output_shape %v does not fit %d classes",
			ErrMetadata, m.OutputShape, len(m.Classes))
	}
	return nil
}

// Encode converts a normalized record into the model's input vector.
// Numeric cells become float32, categorical cells become the index of their
// value in the training vocabulary, and missing nullable integers become NaN,
// the missing-value convention of the trained gradient-boosting pipeline.
func (m *Metadata) Encode(n record.NormalizedRecord) ([]float32, error) {
	cells := n.OrderedValues()
	encoded := make([]float32, len(m.Features))

	for i, f := range m.Features {
		cell := cells[i]
		switch f.Kind {
		case kindNumeric:
			if cell.Missing {
				encoded[i] = float32(math.NaN())
				continue
			}
			if cell.IsText {
				return nil, fmt.Errorf("%w: column %q is text, expected numeric", ErrEncode, f.Name)
			}
			encoded[i] = float32(cell.Number)
		case kindCategorical:
			if !cell.IsText {
				return nil, fmt.Errorf("%w: column %q is numeric, expected text", ErrEncode, f.Name)
			}
			idx := indexOf(f.Categories, cell.Text)
			if idx < 0 {
				return nil, fmt.Errorf("%w: column %q value %q not in training vocabulary %v",
					ErrEncode, f.Name, cell.Text, f.Categories)
			}
			encoded[i] = float32(idx)
		}
	}
	return encoded, nil
}

func indexOf(values []string, v string) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return -1
}
