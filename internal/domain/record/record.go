// Package record defines the 16-field health attribute record accepted by the
// prediction service, its schema validation, and the normalization pipeline
// that converts raw values into the representation the trained model expects.
package record

import (
	"fmt"
	"strings"
)

// InputRecord is the raw attribute set submitted by a collector. Pointer
// fields distinguish absent JSON members from zero values: the five
// round-to-integer fields (FCVC, NCP, CH2O, FAF, TUE) may legitimately be
// null, every other field is required.
type InputRecord struct {
	Gender                      *string  `json:"Gender"`
	Age                         *float64 `json:"Age"`
	Height                      *float64 `json:"Height"`
	Weight                      *float64 `json:"Weight"`
	FamilyHistoryWithOverweight *string  `json:"family_history_with_overweight"`
	FAVC                        *string  `json:"FAVC"`
	FCVC                        *float64 `json:"FCVC"`
	NCP                         *float64 `json:"NCP"`
	CAEC                        *string  `json:"CAEC"`
	SMOKE                       *string  `json:"SMOKE"`
	CH2O                        *float64 `json:"CH2O"`
	SCC                         *string  `json:"SCC"`
	FAF                         *float64 `json:"FAF"`
	TUE                         *float64 `json:"TUE"`
	CALC                        *string  `json:"CALC"`
	MTRANS                      *string  `json:"MTRANS"`
}

// Accepted categorical vocabularies. Comparison happens after lowercasing and
// trimming, so collectors may send any casing.
var (
	genderValues = map[string]bool{"male": true, "female": true}
	yesNoValues  = map[string]bool{"yes": true, "no": true}
	// CAEC/CALC accept both the raw form value "no" and its canonical
	// training-vocabulary form "never".
	frequencyValues = map[string]bool{
		"no": true, "never": true, "sometimes": true, "frequently": true, "always": true,
	}
	// MTRANS accepts both collector aliases and canonical training values.
	transportValues = map[string]bool{
		"walking": true,
		"bicycle": true, "bike": true,
		"motorcycle": true, "motorbike": true,
		"car": true, "automobile": true,
		"public transport": true, "public_transportation": true,
	}
)

// FieldError describes a single schema violation.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every field that failed schema validation. It is
// surfaced to callers with full detail so the request can be fixed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks the record against the 16-field schema. It returns a
// *ValidationError listing every offending field, or nil when the record is
// schema-valid. The normalization pipeline must only run on validated records.
func (r *InputRecord) Validate() error {
	var fields []FieldError

	requireNumber := func(name string, v *float64) {
		if v == nil {
			fields = append(fields, FieldError{Field: name, Reason: "required"})
		}
	}
	requireCategorical := func(name string, v *string, vocab map[string]bool) {
		if v == nil {
			fields = append(fields, FieldError{Field: name, Reason: "required"})
			return
		}
		if !vocab[canon(*v)] {
			fields = append(fields, FieldError{
				Field:  name,
				Reason: fmt.Sprintf("value %q not in allowed set %s", *v, vocabList(vocab)),
			})
		}
	}

	requireCategorical("Gender", r.Gender, genderValues)
	requireNumber("Age", r.Age)
	requireNumber("Height", r.Height)
	requireNumber("Weight", r.Weight)
	requireCategorical("family_history_with_overweight", r.FamilyHistoryWithOverweight, yesNoValues)
	requireCategorical("FAVC", r.FAVC, yesNoValues)
	requireCategorical("CAEC", r.CAEC, frequencyValues)
	requireCategorical("SMOKE", r.SMOKE, yesNoValues)
	requireCategorical("SCC", r.SCC, yesNoValues)
	requireCategorical("CALC", r.CALC, frequencyValues)
	requireCategorical("MTRANS", r.MTRANS, transportValues)
	// FCVC, NCP, CH2O, FAF, TUE are nullable: absent is a valid state and is
	// preserved through normalization as a missing value.

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// canon lowercases and trims a categorical value for comparison.
func canon(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// vocabList renders a vocabulary set for error messages, sorted for stable output.
func vocabList(vocab map[string]bool) string {
	values := make([]string, 0, len(vocab))
	for v := range vocab {
		values = append(values, v)
	}
	// insertion sort; vocabularies are tiny
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j] < values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}
	return "[" + strings.Join(values, ", ") + "]"
}
