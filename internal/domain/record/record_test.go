package record_test

import (
	"errors"
	"testing"

	"github.com/healthml/obesity-predictor/internal/domain/record"
	. "github.com/smartystreets/goconvey/convey"
)

func TestValidate(t *testing.T) {
	Convey("Given an input record", t, func() {
		Convey("When every field is present and in vocabulary", func() {
			in := validInput()

			Convey("Then validation passes", func() {
				So(in.Validate(), ShouldBeNil)
			})
		})

		Convey("When categorical values use mixed case and padding", func() {
			in := validInput()
			in.Gender = strPtr(" Male ")
			in.MTRANS = strPtr("Public Transport")

			Convey("Then validation still passes", func() {
				So(in.Validate(), ShouldBeNil)
			})
		})

		Convey("When a required field is omitted", func() {
			in := validInput()
			in.Gender = nil

			err := in.Validate()

			Convey("Then validation fails naming the field", func() {
				So(err, ShouldNotBeNil)
				var verr *record.ValidationError
				So(errors.As(err, &verr), ShouldBeTrue)
				So(len(verr.Fields), ShouldEqual, 1)
				So(verr.Fields[0].Field, ShouldEqual, "Gender")
				So(verr.Fields[0].Reason, ShouldEqual, "required")
			})
		})

		Convey("When a categorical value is out of vocabulary", func() {
			in := validInput()
			in.MTRANS = strPtr("teleport")

			err := in.Validate()

			Convey("Then validation fails with the offending value", func() {
				So(err, ShouldNotBeNil)
				var verr *record.ValidationError
				So(errors.As(err, &verr), ShouldBeTrue)
				So(verr.Fields[0].Field, ShouldEqual, "MTRANS")
				So(verr.Error(), ShouldContainSubstring, "teleport")
			})
		})

		Convey("When several fields are invalid at once", func() {
			in := validInput()
			in.Age = nil
			in.SMOKE = strPtr("occasionally")
			in.CALC = nil

			err := in.Validate()

			Convey("Then every offending field is reported", func() {
				var verr *record.ValidationError
				So(errors.As(err, &verr), ShouldBeTrue)
				So(len(verr.Fields), ShouldEqual, 3)
				names := make([]string, len(verr.Fields))
				for i, f := range verr.Fields {
					names[i] = f.Field
				}
				So(names, ShouldContain, "Age")
				So(names, ShouldContain, "SMOKE")
				So(names, ShouldContain, "CALC")
			})
		})

		Convey("When the nullable integer fields are null", func() {
			in := validInput()
			in.FCVC = nil
			in.CH2O = nil
			in.TUE = nil

			Convey("Then validation still passes", func() {
				So(in.Validate(), ShouldBeNil)
			})
		})

		Convey("When CAEC uses the canonical never form", func() {
			in := validInput()
			in.CAEC = strPtr("never")

			Convey("Then validation accepts it", func() {
				So(in.Validate(), ShouldBeNil)
			})
		})
	})
}
