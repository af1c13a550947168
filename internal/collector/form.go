package collector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/healthml/obesity-predictor/internal/domain/record"
)

// Form prompts a user for the 16 input attributes. Height is collected in
// meters: unit conversion is owned by the service's normalization pipeline,
// not the collector.
type Form struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewForm creates a form reading answers from in and writing prompts to out.
func NewForm(in io.Reader, out io.Writer) *Form {
	return &Form{in: bufio.NewScanner(in), out: out}
}

// Fill prompts for every attribute and assembles the input record.
func (f *Form) Fill() (record.InputRecord, error) {
	var rec record.InputRecord
	var err error

	fmt.Fprintln(f.out, "Personal information")
	if rec.Gender, err = f.choice("Gender", []string{"male", "female"}); err != nil {
		return rec, err
	}
	if rec.Age, err = f.number("Age (years)", 10, 100); err != nil {
		return rec, err
	}
	if rec.Height, err = f.number("Height (meters)", 1.0, 2.5); err != nil {
		return rec, err
	}
	if rec.Weight, err = f.number("Weight (kg)", 30, 200); err != nil {
		return rec, err
	}
	if rec.FamilyHistoryWithOverweight, err = f.choice("Family history of overweight", []string{"yes", "no"}); err != nil {
		return rec, err
	}
	if rec.FAVC, err = f.choice("Frequent high-calorie food (FAVC)", []string{"yes", "no"}); err != nil {
		return rec, err
	}

	fmt.Fprintln(f.out, "Eating and drinking habits")
	if rec.FCVC, err = f.optionalNumber("Vegetable consumption (1-3)", 1, 3); err != nil {
		return rec, err
	}
	if rec.NCP, err = f.optionalNumber("Meals per day (1-4)", 1, 4); err != nil {
		return rec, err
	}
	if rec.CAEC, err = f.choice("Food between meals (CAEC)", []string{"no", "sometimes", "frequently", "always"}); err != nil {
		return rec, err
	}
	if rec.CH2O, err = f.optionalNumber("Water intake (1-3)", 1, 3); err != nil {
		return rec, err
	}
	if rec.CALC, err = f.choice("Alcohol consumption (CALC)", []string{"never", "sometimes", "frequently", "always"}); err != nil {
		return rec, err
	}
	if rec.SCC, err = f.choice("Do you monitor calories (SCC)", []string{"yes", "no"}); err != nil {
		return rec, err
	}

	fmt.Fprintln(f.out, "Lifestyle and transport")
	if rec.SMOKE, err = f.choice("Do you smoke", []string{"yes", "no"}); err != nil {
		return rec, err
	}
	if rec.FAF, err = f.optionalNumber("Physical activity frequency (0-3)", 0, 3); err != nil {
		return rec, err
	}
	if rec.TUE, err = f.optionalNumber("Technology use, hours/day (0-3)", 0, 3); err != nil {
		return rec, err
	}
	if rec.MTRANS, err = f.choice("Transportation mode", []string{
		"walking", "public transport", "motorcycle", "car", "bicycle",
	}); err != nil {
		return rec, err
	}

	return rec, nil
}

// choice prompts until the answer is one of the allowed values.
func (f *Form) choice(prompt string, allowed []string) (*string, error) {
	for {
		fmt.Fprintf(f.out, "%s [%s]: ", prompt, strings.Join(allowed, "/"))
		line, err := f.readLine()
		if err != nil {
			return nil, err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		for _, a := range allowed {
			if answer == a {
				return &answer, nil
			}
		}
		fmt.Fprintf(f.out, "please answer one of: %s\n", strings.Join(allowed, ", "))
	}
}

// number prompts until a float inside [min, max] is entered.
func (f *Form) number(prompt string, min, max float64) (*float64, error) {
	for {
		fmt.Fprintf(f.out, "%s: ", prompt)
		line, err := f.readLine()
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil || v < min || v > max {
			fmt.Fprintf(f.out, "please enter a number between %g and %g\n", min, max)
			continue
		}
		return &v, nil
	}
}

// optionalNumber is like number but an empty answer means "no value".
func (f *Form) optionalNumber(prompt string, min, max float64) (*float64, error) {
	for {
		fmt.Fprintf(f.out, "%s (empty to skip): ", prompt)
		line, err := f.readLine()
		if err != nil {
			return nil, err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || v < min || v > max {
			fmt.Fprintf(f.out, "please enter a number between %g and %g, or leave empty\n", min, max)
			continue
		}
		return &v, nil
	}
}

func (f *Form) readLine() (string, error) {
	if !f.in.Scan() {
		if err := f.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return f.in.Text(), nil
}
