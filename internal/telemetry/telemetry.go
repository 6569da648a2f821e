// Package telemetry records search statistics as otel/metric
// instruments, observing the engine's SearchStats without changing the
// search algorithm itself. It is read-only instrumentation: the
// stats command surfaces the same numbers the core already computed.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Recorder wraps the counters fed by every genmove call.
type Recorder struct {
	nodes    metric.Int64Counter
	duration metric.Float64Histogram

	lastNodes    uint64
	lastNanos    int64
	lastMove     string
	lastDepth    int
	callCount    int64
}

// NewRecorder builds a Recorder from the given meter. A nil meter
// (e.g. in tests, or when telemetry is disabled) yields a Recorder
// that exports no metrics and never panics; it still keeps the last
// observation for LastSummary.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	if meter == nil {
		return r, nil
	}

	nodes, err := meter.Int64Counter(
		"gongo.search.nodes",
		metric.WithDescription("total minimax nodes visited across all searches"),
	)
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram(
		"gongo.search.duration_seconds",
		metric.WithDescription("wall-clock duration of each searchTree call"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	r.nodes = nodes
	r.duration = duration
	return r, nil
}

// Observe records one completed search. move/depth/nodeCount/seconds
// mirror the fields of engine.SearchStats; this package does not
// import internal/engine to avoid a dependency cycle with callers that
// wire both together.
func (r *Recorder) Observe(ctx context.Context, move string, depth int, nodeCount uint64, seconds float64) {
	r.callCount++
	r.lastMove = move
	r.lastDepth = depth
	r.lastNodes = nodeCount
	r.lastNanos = int64(seconds * 1e9)

	if r.nodes != nil {
		r.nodes.Add(ctx, int64(nodeCount))
	}
	if r.duration != nil {
		r.duration.Record(ctx, seconds)
	}
}

// LastSummary returns a human-readable line describing the most
// recently observed search, for the "stats" admin command.
func (r *Recorder) LastSummary() string {
	if r.callCount == 0 {
		return "no searches recorded"
	}
	return formatSummary(r.lastMove, r.lastDepth, r.lastNodes, r.lastNanos, r.callCount)
}

func formatSummary(move string, depth int, nodeCount uint64, nanos int64, calls int64) string {
	d := time.Duration(nanos)
	return fmt.Sprintf("move=%s depth=%d nodes=%d duration=%s searches=%d", move, depth, nodeCount, d, calls)
}
