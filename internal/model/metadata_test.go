package model_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/healthml/obesity-predictor/internal/domain/record"
	"github.com/healthml/obesity-predictor/internal/model"
	. "github.com/smartystreets/goconvey/convey"
)

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }

func scenarioInput() record.InputRecord {
	return record.InputRecord{
		Gender:                      strPtr("male"),
		Age:                         numPtr(25.0),
		Height:                      numPtr(1.70),
		Weight:                      numPtr(65.0),
		FamilyHistoryWithOverweight: strPtr("no"),
		FAVC:                        strPtr("no"),
		FCVC:                        numPtr(2.0),
		NCP:                         numPtr(3.0),
		CAEC:                        strPtr("no"),
		SMOKE:                       strPtr("no"),
		CH2O:                        numPtr(2.0),
		SCC:                         strPtr("no"),
		FAF:                         numPtr(1.0),
		TUE:                         numPtr(1.0),
		CALC:                        strPtr("no"),
		MTRANS:                      strPtr("automobile"),
	}
}

func TestLoadMetadata(t *testing.T) {
	Convey("Given the model metadata file", t, func() {
		Convey("When loading a well-formed file", func() {
			meta, err := model.LoadMetadata(filepath.Join("testdata", "model_metadata.json"))

			Convey("Then it loads with 16 features and 7 classes", func() {
				So(err, ShouldBeNil)
				So(meta, ShouldNotBeNil)
				So(len(meta.Features), ShouldEqual, 16)
				So(len(meta.Classes), ShouldEqual, 7)
				So(meta.Features[0].Name, ShouldEqual, "Gender")
				So(meta.Features[15].Name, ShouldEqual, "MTRANS")
			})
		})

		Convey("When the file does not exist", func() {
			_, err := model.LoadMetadata(filepath.Join("testdata", "nope.json"))

			Convey("Then it fails with a load error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, model.ErrLoad), ShouldBeTrue)
			})
		})

		Convey("When the feature order drifted from the training columns", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "drifted.json")
			drifted := `{
				"input_shape": [1, 2],
				"output_shape": [1, 1],
				"classes": ["normal weight"],
				"features": [
					{"name": "Age", "kind": "numeric"},
					{"name": "Gender", "kind": "categorical", "categories": ["male", "female"]}
				]
			}`
			So(os.WriteFile(path, []byte(drifted), 0o600), ShouldBeNil)

			_, err := model.LoadMetadata(path)

			Convey("Then the load is rejected as invalid metadata", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, model.ErrMetadata), ShouldBeTrue)
			})
		})

		Convey("When the file is not valid JSON", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "broken.json")
			So(os.WriteFile(path, []byte("{nope"), 0o600), ShouldBeNil)

			_, err := model.LoadMetadata(path)

			So(errors.Is(err, model.ErrMetadata), ShouldBeTrue)
		})
	})
}

func TestEncode(t *testing.T) {
	Convey("Given loaded metadata and a normalized record", t, func() {
		meta, err := model.LoadMetadata(filepath.Join("testdata", "model_metadata.json"))
		So(err, ShouldBeNil)

		Convey("When encoding the scenario record", func() {
			n := record.Normalize(scenarioInput())
			encoded, err := meta.Encode(n)

			Convey("Then the vector follows the fixed column order", func() {
				So(err, ShouldBeNil)
				So(len(encoded), ShouldEqual, 16)
				So(encoded[0], ShouldEqual, 0)     // Gender male -> index 0
				So(encoded[1], ShouldEqual, 25.0)  // Age
				So(encoded[2], ShouldEqual, 170.0) // Height in centimeters
				So(encoded[3], ShouldEqual, 65.0)  // Weight
				So(encoded[8], ShouldEqual, 0)     // CAEC no -> never -> index 0
				So(encoded[15], ShouldEqual, 3)    // MTRANS automobile -> car -> index 3
			})
		})

		Convey("When nullable integer fields are missing", func() {
			in := scenarioInput()
			in.FCVC = nil
			in.CH2O = nil
			n := record.Normalize(in)

			encoded, err := meta.Encode(n)

			Convey("Then missing cells encode as NaN, not zero", func() {
				So(err, ShouldBeNil)
				So(math.IsNaN(float64(encoded[6])), ShouldBeTrue)  // FCVC
				So(math.IsNaN(float64(encoded[10])), ShouldBeTrue) // CH2O
				So(encoded[7], ShouldEqual, 3)                     // NCP still present
			})
		})

		Convey("When a categorical value escapes the training vocabulary", func() {
			n := record.Normalize(scenarioInput())
			n.MTRANS = "hovercraft"

			_, err := meta.Encode(n)

			Convey("Then encoding fails with an encode error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, model.ErrEncode), ShouldBeTrue)
			})
		})
	})
}
