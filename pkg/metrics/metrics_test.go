package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given metrics manager options", t, func() {
		Convey("When creating a manager with defaults on a fresh registry", func() {
			registry := prometheus.NewRegistry()
			m := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should use the obesity predictor namespace", func() {
				So(m, ShouldNotBeNil)
				So(m.namespace, ShouldEqual, "obesity")
				So(m.subsystem, ShouldEqual, "predictor")
				So(m.enabled, ShouldBeTrue)
			})

			Convey("And all metric families should be registered", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				// Gauges appear immediately; counters/vecs appear after first use,
				// so just assert the gauge family is present.
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["obesity_predictor_model_loaded"], ShouldBeTrue)
			})
		})

		Convey("When creating a manager with custom options", func() {
			registry := prometheus.NewRegistry()
			m := NewManager(
				WithPrometheusRegistry(registry),
				WithNamespace("custom"),
				WithSubsystem("svc"),
				WithHistogramBuckets([]float64{1, 10, 100}),
				WithMetricsEnabled(false),
			)

			Convey("Then the options should be applied", func() {
				So(m.namespace, ShouldEqual, "custom")
				So(m.subsystem, ShouldEqual, "svc")
				So(m.histogramBuckets, ShouldResemble, []float64{1, 10, 100})
				So(m.enabled, ShouldBeFalse)
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording through the package-level helpers", func() {
			// None of these should panic; they feed the singleton registry.
			So(func() {
				RecordPrediction("normal weight")
				RecordPredictionLatency(12.5)
				RecordValidationError()
				RecordInferenceError()
				RecordUnknownCode()
				SetModelLoaded(true)
				SetModelLoaded(false)
				RecordHTTPRequest("predict", "POST", "200")
				RecordHTTPRequestDuration("predict", "POST", "200", 3.2)
				RecordErrorByEndpoint("predict", "POST", "client_error")
			}, ShouldNotPanic)
		})

		Convey("When gathering the global registry", func() {
			families, err := GetRegistry().Gather()

			Convey("Then the prediction counter should be present", func() {
				So(err, ShouldBeNil)
				found := false
				for _, f := range families {
					if f.GetName() == "obesity_predictor_predictions_total" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}
