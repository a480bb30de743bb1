package app

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/filmbox/movie-catalog/internal/app"

// requestMetrics records a request counter and a duration histogram for every
// request, tagged with method, route pattern and status code. Instruments come
// from the global meter provider, so without telemetry initialized they are
// no-ops.
func (app *Application) requestMetrics(next http.Handler) http.Handler {
	meter := otel.Meter(meterName)

	requestCount, err := meter.Int64Counter(
		"http.server.request.count",
		metric.WithDescription("Number of HTTP requests handled."),
	)
	if err != nil {
		app.logger.Error("failed to create request counter", "error", err)
		return next
	}

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of HTTP requests."),
		metric.WithUnit("s"),
	)
	if err != nil {
		app.logger.Error("failed to create request duration histogram", "error", err)
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		attrs := metric.WithAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.String("http.route", route),
			attribute.String("http.response.status_code", strconv.Itoa(ww.Status())),
		)

		requestCount.Add(r.Context(), 1, attrs)
		requestDuration.Record(r.Context(), time.Since(start).Seconds(), attrs)
	})
}
