package verovio

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("github.com/withSang/verovio")
var meter = otel.Meter("github.com/withSang/verovio")

// ---- optimize.go ----

const (
	// visibilityKey is the attribute key associating each staff group record with
	// the visibility the optimisation computed for it.
	visibilityKey = "visibility"
)

var (
	// optimizeDuration measures the duration of a single score definition
	// optimisation, from the first Visit to the last VisitEnd.
	optimizeDuration metric.Float64Histogram
	// optimizedStaffGroups counts the staff groups the optimisation visited.
	//
	// Each record is associated with the visibilityKey.
	optimizedStaffGroups metric.Int64Counter
)

func init() {
	var err error
	optimizeDuration, err = meter.Float64Histogram(
		"scoreDef.optimize.duration",
		metric.WithDescription("The duration of a single score definition optimisation pass."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		panic("verovio: failed to init 'scoreDef.optimize.duration' instrument")
	}

	optimizedStaffGroups, err = meter.Int64Counter(
		"scoreDef.optimize.staffGrp",
		metric.WithDescription("The number of staff groups visited by the optimisation pass, by computed visibility."),
	)
	if err != nil {
		panic("verovio: failed to init 'scoreDef.optimize.staffGrp' instrument")
	}
}

// measureOptimize records the duration of an optimisation pass and the number
// of staff groups it left shown and hidden.
//
// According to [metric] documentation, [metric.WithAttributeSet] should be used
// instead of [metric.WithAttributes] for performance optimization.
func measureOptimize(ctx context.Context, shown, hidden int, d time.Duration) {
	// floating-point division for sub-millisecond precision
	duration := float64(d) / float64(time.Millisecond)
	optimizeDuration.Record(ctx, duration)

	if shown > 0 {
		attrs := attribute.NewSet(attribute.String(visibilityKey, "show"))
		optimizedStaffGroups.Add(ctx, int64(shown), metric.WithAttributeSet(attrs))
	}
	if hidden > 0 {
		attrs := attribute.NewSet(attribute.String(visibilityKey, "hidden"))
		optimizedStaffGroups.Add(ctx, int64(hidden), metric.WithAttributeSet(attrs))
	}
}
