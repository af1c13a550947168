package record

import (
	"math"
)

// Columns is the fixed column order the model was trained on. The normalized
// record must be assembled in exactly this order before encoding.
var Columns = [16]string{
	"Gender", "Age", "Height", "Weight", "family_history_with_overweight",
	"FAVC", "FCVC", "NCP", "CAEC", "SMOKE", "CH2O", "SCC", "FAF", "TUE",
	"CALC", "MTRANS",
}

// NormalizedRecord is the input record after unit conversion, rounding and
// vocabulary canonicalization. Categorical fields stay text; the five
// round-to-integer fields are nullable integers so an absent value is never
// coerced to zero.
type NormalizedRecord struct {
	Gender                      string
	Age                         float64
	Height                      float64 // centimeters, 1 decimal
	Weight                      float64
	FamilyHistoryWithOverweight string
	FAVC                        string
	FCVC                        *int64
	NCP                         *int64
	CAEC                        string
	SMOKE                       string
	CH2O                        *int64
	SCC                         string
	FAF                         *int64
	TUE                         *int64
	CALC                        string
	MTRANS                      string
}

// Value is a single cell of a normalized record: text, a number, or missing.
// Keeping categorical cells as explicit text defends against accidental
// numeric coercion downstream.
type Value struct {
	Text    string
	Number  float64
	IsText  bool
	Missing bool
}

// TextValue builds a text cell.
func TextValue(s string) Value { return Value{Text: s, IsText: true} }

// NumberValue builds a numeric cell.
func NumberValue(f float64) Value { return Value{Number: f} }

// MissingValue builds a missing cell.
func MissingValue() Value { return Value{Missing: true} }

// Normalize applies the normalization pipeline to a schema-valid record. It
// is pure and total: no I/O, no randomness, no error path, and the input is
// never mutated. Rounding is half-to-even throughout, matching the convention
// the model's training pipeline used.
func Normalize(in InputRecord) NormalizedRecord {
	return NormalizedRecord{
		Gender:                      canon(*in.Gender),
		Age:                         roundTo1(*in.Age),
		Height:                      roundTo1(*in.Height * 100), // meters -> centimeters
		Weight:                      roundTo1(*in.Weight),
		FamilyHistoryWithOverweight: canon(*in.FamilyHistoryWithOverweight),
		FAVC:                        canon(*in.FAVC),
		FCVC:                        roundToInt(in.FCVC),
		NCP:                         roundToInt(in.NCP),
		CAEC:                        CanonicalFrequency(canon(*in.CAEC)),
		SMOKE:                       canon(*in.SMOKE),
		CH2O:                        roundToInt(in.CH2O),
		SCC:                         canon(*in.SCC),
		FAF:                         roundToInt(in.FAF),
		TUE:                         roundToInt(in.TUE),
		CALC:                        CanonicalFrequency(canon(*in.CALC)),
		MTRANS:                      CanonicalTransport(canon(*in.MTRANS)),
	}
}

// CanonicalTransport maps collector aliases for MTRANS onto the model's
// training vocabulary. Canonical values are fixed points, so the mapping is
// idempotent.
func CanonicalTransport(v string) string {
	switch v {
	case "automobile":
		return "car"
	case "motorbike":
		return "motorcycle"
	case "bike":
		return "bicycle"
	case "public_transportation":
		return "public transport"
	default:
		return v
	}
}

// CanonicalFrequency maps the CAEC/CALC form value "no" onto the training
// vocabulary value "never". Every other value is a fixed point.
func CanonicalFrequency(v string) string {
	if v == "no" {
		return "never"
	}
	return v
}

// OrderedValues assembles the record's cells in the fixed column order.
func (n NormalizedRecord) OrderedValues() [16]Value {
	return [16]Value{
		TextValue(n.Gender),
		NumberValue(n.Age),
		NumberValue(n.Height),
		NumberValue(n.Weight),
		TextValue(n.FamilyHistoryWithOverweight),
		TextValue(n.FAVC),
		nullableInt(n.FCVC),
		nullableInt(n.NCP),
		TextValue(n.CAEC),
		TextValue(n.SMOKE),
		nullableInt(n.CH2O),
		TextValue(n.SCC),
		nullableInt(n.FAF),
		nullableInt(n.TUE),
		TextValue(n.CALC),
		TextValue(n.MTRANS),
	}
}

func nullableInt(v *int64) Value {
	if v == nil {
		return MissingValue()
	}
	return NumberValue(float64(*v))
}

// roundTo1 rounds to 1 decimal place, half to even.
func roundTo1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

// roundToInt rounds a nullable value to the nearest integer, half to even.
// nil passes through as nil, never as zero.
func roundToInt(v *float64) *int64 {
	if v == nil {
		return nil
	}
	i := int64(math.RoundToEven(*v))
	return &i
}
