package collector_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/healthml/obesity-predictor/internal/collector"
	. "github.com/smartystreets/goconvey/convey"
)

// answers joins one line per prompt, in the order Fill asks them.
func answers(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestFormFill(t *testing.T) {
	Convey("Given a terminal form", t, func() {
		Convey("When every prompt is answered", func() {
			in := answers(
				"female", "31", "1.62", "58.5", "yes", "no", // personal
				"3", "3", "sometimes", "2", "never", "yes", // eating and drinking
				"no", "2", "1", "walking", // lifestyle and transport
			)
			var out strings.Builder

			rec, err := collector.NewForm(in, &out).Fill()

			Convey("Then the assembled record carries the answers", func() {
				So(err, ShouldBeNil)
				So(*rec.Gender, ShouldEqual, "female")
				So(*rec.Age, ShouldEqual, 31.0)
				So(*rec.Height, ShouldEqual, 1.62)
				So(*rec.Weight, ShouldEqual, 58.5)
				So(*rec.CAEC, ShouldEqual, "sometimes")
				So(*rec.CALC, ShouldEqual, "never")
				So(*rec.MTRANS, ShouldEqual, "walking")
				So(*rec.NCP, ShouldEqual, 3.0)
			})
		})

		Convey("When an optional numeric prompt is left empty", func() {
			in := answers(
				"male", "40", "1.80", "82", "no", "no",
				"", "", "no", "", "sometimes", "no",
				"no", "", "", "car",
			)
			var out strings.Builder

			rec, err := collector.NewForm(in, &out).Fill()

			Convey("Then the skipped attributes stay nil", func() {
				So(err, ShouldBeNil)
				So(rec.FCVC, ShouldBeNil)
				So(rec.NCP, ShouldBeNil)
				So(rec.CH2O, ShouldBeNil)
				So(rec.FAF, ShouldBeNil)
				So(rec.TUE, ShouldBeNil)
				So(*rec.MTRANS, ShouldEqual, "car")
			})
		})

		Convey("When an invalid choice is entered first", func() {
			in := answers(
				"robot", "Female", "31", "1.62", "58.5", "yes", "no",
				"3", "3", "sometimes", "2", "never", "yes",
				"no", "2", "1", "walking",
			)
			var out strings.Builder

			rec, err := collector.NewForm(in, &out).Fill()

			Convey("Then the prompt repeats and the case-folded retry is accepted", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldContainSubstring, "please answer one of")
				So(*rec.Gender, ShouldEqual, "female")
			})
		})

		Convey("When a numeric answer is out of range", func() {
			in := answers(
				"female", "250", "31", "1.62", "58.5", "yes", "no",
				"3", "3", "sometimes", "2", "never", "yes",
				"no", "2", "1", "walking",
			)
			var out strings.Builder

			rec, err := collector.NewForm(in, &out).Fill()

			Convey("Then the prompt repeats until the value fits", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldContainSubstring, "please enter a number between")
				So(*rec.Age, ShouldEqual, 31.0)
			})
		})

		Convey("When the input ends mid-form", func() {
			in := strings.NewReader("female\n31\n")
			var out strings.Builder

			_, err := collector.NewForm(in, &out).Fill()

			Convey("Then Fill reports end of input", func() {
				So(errors.Is(err, io.EOF), ShouldBeTrue)
			})
		})
	})
}
