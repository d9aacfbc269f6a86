package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(
			WithNamespace("test"),
			WithSubsystem("unit"),
			WithHistogramBuckets([]float64{0.1, 1}),
			WithConstLabels(map[string]string{"env": "test"}),
			WithPrometheusRegistry(registry),
		)

		Convey("Then they are applied to the manager", func() {
			So(m.namespace, ShouldEqual, "test")
			So(m.subsystem, ShouldEqual, "unit")
			So(m.histogramBuckets, ShouldResemble, []float64{0.1, 1})
			So(m.constLabels["env"], ShouldEqual, "test")
		})

		Convey("Then metrics are registered under the namespace", func() {
			m.sessionsStarted.Inc()
			families, err := registry.Gather()
			So(err, ShouldBeNil)
			names := make([]string, 0, len(families))
			for _, f := range families {
				names = append(names, f.GetName())
			}
			So(names, ShouldContain, "test_unit_sessions_started_total")
		})

		Convey("Then empty options keep defaults", func() {
			d := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)
			So(d.namespace, ShouldEqual, "bikeshare")
			So(d.subsystem, ShouldEqual, "explorer")
			So(d.histogramBuckets, ShouldNotBeEmpty)
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When a session is started and completed", func() {
			before := testutil.ToFloat64(globalManager.sessionsStarted)
			RecordSessionStarted()
			RecordSessionCompleted()

			Convey("Then the counters advance", func() {
				So(testutil.ToFloat64(globalManager.sessionsStarted), ShouldEqual, before+1)
			})
		})

		Convey("When invalid input is recorded", func() {
			RecordInvalidInput("city")
			RecordInvalidInput("city")

			Convey("Then the field label is used", func() {
				So(testutil.ToFloat64(globalManager.invalidInputs.WithLabelValues("city")), ShouldBeGreaterThanOrEqualTo, 2)
			})
		})

		Convey("When a load is recorded", func() {
			RecordLoad(0.02, 300, 42)

			Convey("Then the matched gauge holds the latest value", func() {
				So(testutil.ToFloat64(globalManager.recordsMatched), ShouldEqual, 42)
			})
		})

		Convey("When other events are recorded", func() {
			So(func() {
				RecordLoadError("source_unavailable")
				RecordReportDuration("time", 0.001)
				RecordRowsDisplayed(5)
			}, ShouldNotPanic)
		})
	})
}

func TestWriteTextfile(t *testing.T) {
	Convey("Given recorded metrics", t, func() {
		RecordSessionStarted()
		path := filepath.Join(t.TempDir(), "bikeshare.prom")

		Convey("When writing the textfile", func() {
			err := WriteTextfile(path)

			Convey("Then the file holds the exposition text", func() {
				So(err, ShouldBeNil)
				data, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				So(strings.Contains(string(data), "bikeshare_explorer_sessions_started_total"), ShouldBeTrue)
			})
		})

		Convey("When the directory does not exist", func() {
			err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))

			Convey("Then ErrWriteFailed is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, ErrWriteFailed.Error())
			})
		})
	})

	Convey("Given the global registry", t, func() {
		So(GetRegistry(), ShouldEqual, customRegistry)
	})
}
