// Package label maps the model's integer class codes to human-readable
// obesity level labels and category-banded advisory messages.
package label

// UnknownLabel is returned for class codes outside the known table. An
// unknown code degrades to this sentinel instead of failing the request.
const UnknownLabel = "Unknown Prediction"

// labels is the fixed code->label table, a total bijection over 0..6.
var labels = [7]string{
	"insufficient weight",
	"normal weight",
	"overweight level i",
	"overweight level ii",
	"obesity type i",
	"obesity type ii",
	"obesity type iii",
}

// codes is the reverse label->code mapping.
var codes = func() map[string]int {
	m := make(map[string]int, len(labels))
	for code, l := range labels {
		m[l] = code
	}
	return m
}()

// Known reports whether code is inside the class table.
func Known(code int) bool {
	return code >= 0 && code < len(labels)
}

// ForCode returns the label for a class code, or UnknownLabel when the code
// is outside the table.
func ForCode(code int) string {
	if !Known(code) {
		return UnknownLabel
	}
	return labels[code]
}

// CodeFor returns the class code for a label.
func CodeFor(label string) (int, bool) {
	code, ok := codes[label]
	return code, ok
}

// Count returns the number of known classes.
func Count() int {
	return len(labels)
}

// Advisory returns the category-banded advisory message for a class code.
func Advisory(code int) string {
	switch {
	case code == 0:
		return "Your weight is below the healthy range. Consider consulting a nutritionist."
	case code == 1:
		return "You are within a healthy weight range. Keep up the good work!"
	case code == 2:
		return "You are in the Overweight Level I range. Focus on balanced diet and regular physical activity."
	case code == 3:
		return "You are in the Overweight Level II range. It's recommended to adopt healthier eating habits and increase physical activity."
	case code >= 4:
		return "Your weight is in the Obesity range (Type I, II, or III). It's highly recommended to consult a healthcare professional for a tailored plan."
	default:
		return ""
	}
}
