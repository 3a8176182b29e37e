package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func gathered(m *Manager) map[string]float64 {
	families, err := m.Registry().Gather()
	So(err, ShouldBeNil)

	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				out[mf.GetName()] += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				out[mf.GetName()] += metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				out[mf.GetName()] += float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	return out
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			manager := NewManager()

			Convey("Then it uses its own registry", func() {
				So(manager, ShouldNotBeNil)
				So(manager.Registry(), ShouldNotBeNil)
				So(manager.Registry(), ShouldNotEqual, prometheus.DefaultRegisterer)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("dash"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRegistry(registry),
			)
			manager.SetDatabaseConnected(true)

			Convey("Then metric names carry the namespace", func() {
				So(manager.Registry(), ShouldEqual, registry)
				So(gathered(manager), ShouldContainKey, "test_dash_database_connected")
			})
		})

		Convey("When two managers are created", func() {
			Convey("Then they do not collide", func() {
				So(func() {
					NewManager()
					NewManager()
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		manager := NewManager()

		Convey("When insights are observed", func() {
			manager.ObserveInsight("successful-bookings", "ok", 3*time.Millisecond)
			manager.ObserveInsight("successful-bookings", "ok", 2*time.Millisecond)
			manager.ObserveInsight("upi-payments", "no_connection", 0)

			Convey("Then the counter and histogram advance", func() {
				values := gathered(manager)
				So(values["ride_insights_served_total"], ShouldEqual, 3)
				So(values["ride_insights_query_duration_seconds"], ShouldEqual, 3)
			})
		})

		Convey("When HTTP requests are recorded", func() {
			manager.RecordHTTPRequest("/api/insights/:insight", http.MethodGet, http.StatusOK, time.Millisecond)

			Convey("Then they are counted", func() {
				values := gathered(manager)
				So(values["ride_insights_http_requests_total"], ShouldEqual, 1)
				So(values["ride_insights_http_request_duration_seconds"], ShouldEqual, 1)
			})
		})

		Convey("When the database state changes", func() {
			manager.SetDatabaseConnected(true)
			So(gathered(manager)["ride_insights_database_connected"], ShouldEqual, 1)

			manager.SetDatabaseConnected(false)
			So(gathered(manager)["ride_insights_database_connected"], ShouldEqual, 0)
		})
	})
}

func TestMetricsDisabled(t *testing.T) {
	Convey("Given a disabled metrics manager", t, func() {
		manager := NewManager(WithMetricsEnabled(false))

		Convey("When observations arrive", func() {
			manager.ObserveInsight("home", "ok", time.Millisecond)
			manager.RecordHTTPRequest("/", http.MethodGet, http.StatusOK, time.Millisecond)

			Convey("Then nothing is recorded", func() {
				values := gathered(manager)
				So(values["ride_insights_served_total"], ShouldEqual, 0)
				So(values["ride_insights_http_requests_total"], ShouldEqual, 0)
			})
		})
	})
}

func TestMetricsHandler(t *testing.T) {
	Convey("Given a manager with recorded insights", t, func() {
		manager := NewManager()
		manager.ObserveInsight("top-customers", "ok", time.Millisecond)

		Convey("When scraping the handler", func() {
			rec := httptest.NewRecorder()
			manager.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			body, err := io.ReadAll(rec.Body)

			Convey("Then the exposition includes the insight series", func() {
				So(err, ShouldBeNil)
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(string(body), ShouldContainSubstring, `ride_insights_served_total{insight="top-customers",status="ok"} 1`)
			})
		})
	})
}
