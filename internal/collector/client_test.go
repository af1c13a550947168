package collector_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/healthml/obesity-predictor/internal/collector"
	"github.com/healthml/obesity-predictor/internal/domain/record"
	. "github.com/smartystreets/goconvey/convey"
)

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }

func sampleRecord() record.InputRecord {
	return record.InputRecord{
		Gender:                      strPtr("female"),
		Age:                         numPtr(31.0),
		Height:                      numPtr(1.62),
		Weight:                      numPtr(58.5),
		FamilyHistoryWithOverweight: strPtr("yes"),
		FAVC:                        strPtr("no"),
		FCVC:                        numPtr(3.0),
		NCP:                         numPtr(3.0),
		CAEC:                        strPtr("sometimes"),
		SMOKE:                       strPtr("no"),
		CH2O:                        numPtr(2.0),
		SCC:                         strPtr("yes"),
		FAF:                         numPtr(2.0),
		TUE:                         numPtr(1.0),
		CALC:                        strPtr("never"),
		MTRANS:                      strPtr("walking"),
	}
}

func TestClientPredict(t *testing.T) {
	Convey("Given a prediction service", t, func() {
		ctx := context.Background()

		Convey("When the service answers successfully", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/predict" || r.Method != http.MethodPost {
					http.NotFound(w, r)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"prediction_code":1,"prediction_label":"normal weight"}`))
			}))
			defer srv.Close()

			client := collector.NewClient(srv.URL, 5*time.Second)
			resp, err := client.Predict(ctx, sampleRecord())

			Convey("Then the parsed result is returned", func() {
				So(err, ShouldBeNil)
				So(resp.PredictionCode, ShouldEqual, 1)
				So(resp.PredictionLabel, ShouldEqual, "normal weight")
			})
		})

		Convey("When the server is unreachable", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			srv.Close() // shut down before the request

			client := collector.NewClient(srv.URL, 2*time.Second)
			_, err := client.Predict(ctx, sampleRecord())

			Convey("Then the failure is classified as a connection error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, collector.ErrConnection), ShouldBeTrue)
				So(collector.ExitCode(err), ShouldEqual, 2)
			})
		})

		Convey("When the server answers with an error status", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"Model not loaded. Server initialization failed."}`))
			}))
			defer srv.Close()

			client := collector.NewClient(srv.URL, 5*time.Second)
			_, err := client.Predict(ctx, sampleRecord())

			Convey("Then the failure is classified as an HTTP status error carrying the server message", func() {
				So(errors.Is(err, collector.ErrHTTPStatus), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "status 500")
				So(err.Error(), ShouldContainSubstring, "Model not loaded")
				So(collector.ExitCode(err), ShouldEqual, 3)
			})
		})

		Convey("When the server answers 200 with a body that is not JSON", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>proxy error</html>"))
			}))
			defer srv.Close()

			client := collector.NewClient(srv.URL, 5*time.Second)
			_, err := client.Predict(ctx, sampleRecord())

			Convey("Then the failure is classified as a payload error", func() {
				So(errors.Is(err, collector.ErrBadPayload), ShouldBeTrue)
				So(collector.ExitCode(err), ShouldEqual, 4)
			})
		})
	})
}

func TestClientHealth(t *testing.T) {
	Convey("Given the readiness endpoint", t, func() {
		ctx := context.Background()

		Convey("When the service is ready", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/healthz" {
					_, _ = w.Write([]byte(`{"status":"ok","model_loaded":true}`))
					return
				}
				http.NotFound(w, r)
			}))
			defer srv.Close()

			client := collector.NewClient(srv.URL, 5*time.Second)
			So(client.Health(ctx), ShouldBeNil)
		})

		Convey("When the service is not ready", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			client := collector.NewClient(srv.URL, 5*time.Second)
			err := client.Health(ctx)
			So(errors.Is(err, collector.ErrHTTPStatus), ShouldBeTrue)
		})
	})
}

func TestRenderError(t *testing.T) {
	Convey("Given the three failure categories", t, func() {
		Convey("Then each renders a distinct message", func() {
			var b strings.Builder
			collector.RenderError(&b, collector.ErrConnection)
			So(b.String(), ShouldContainSubstring, "Connection error")

			b.Reset()
			collector.RenderError(&b, collector.ErrHTTPStatus)
			So(b.String(), ShouldContainSubstring, "Server error")

			b.Reset()
			collector.RenderError(&b, collector.ErrBadPayload)
			So(b.String(), ShouldContainSubstring, "Data error")
		})
	})
}
