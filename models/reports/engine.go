package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmdatafocus/hotel_analytics/config"
	"github.com/mmdatafocus/hotel_analytics/models"
	"github.com/mmdatafocus/hotel_analytics/utils"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hotel-analytics/reports")

// SnapshotLoader is the store boundary of the engine. Implementations must
// return one read-consistent snapshot per call.
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context, scope models.SnapshotScope) (*models.Snapshot, error)
}

// Engine runs the analytics reports. It holds no per-call state and is safe
// for concurrent use.
type Engine struct {
	loader SnapshotLoader
	logger *logrus.Logger
}

func NewEngine(loader SnapshotLoader, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = config.GetLogger()
	}
	return &Engine{loader: loader, logger: logger}
}

// runReport validates params, loads one snapshot for the years the report
// needs and hands it to build. The result is all rows or an error.
func runReport[P any, R any](
	ctx context.Context,
	e *Engine,
	name string,
	params P,
	years func(P) []int,
	build func(*models.Snapshot, P) []R,
) ([]R, error) {
	started := time.Now()
	ctx = utils.SetReportNameInContext(ctx, name)
	ctx, span := tracer.Start(ctx, "reports."+name)
	defer span.End()

	outcome := "ok"
	defer func() {
		config.ReportExecutions.WithLabelValues(name, outcome).Inc()
		config.ReportDuration.WithLabelValues(name).Observe(time.Since(started).Seconds())
	}()

	if err := utils.ValidateStruct(params); err != nil {
		outcome = "invalid"
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	scope := models.SnapshotScope{Years: years(params)}
	span.SetAttributes(attribute.IntSlice("report.years", scope.Years))

	snap, err := e.loader.LoadSnapshot(ctx, scope)
	if err != nil {
		outcome = "failed"
		span.RecordError(err)
		span.SetStatus(codes.Error, "load snapshot")
		config.LogError(e.logger, "engine.go", "runReport", "load snapshot for "+name, params, err)
		return nil, fmt.Errorf("%s: load snapshot: %w", name, err)
	}

	rows := build(snap, params)
	span.SetAttributes(attribute.Int("report.rows", len(rows)))
	config.ReportRows.WithLabelValues(name).Observe(float64(len(rows)))
	logSlowReport(ctx, e.logger, started, params)
	return rows, nil
}

// logSlowReport warns when the report named in ctx ran past REPORT_SLOW_MS.
func logSlowReport(ctx context.Context, logger *logrus.Logger, started time.Time, params any) {
	d := time.Since(started)
	if d.Milliseconds() < int64(config.IntFromEnv("REPORT_SLOW_MS", 500)) {
		return
	}
	name, _ := utils.GetReportNameFromContext(ctx)
	cid, _ := utils.GetCorrelationIdFromContext(ctx)
	fields := logrus.Fields{
		"report":         name,
		"ms":             d.Milliseconds(),
		"correlation_id": cid,
		"params":         params,
	}
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.HasTraceID() {
		fields["trace_id"] = sc.TraceID().String()
	}
	logger.WithFields(fields).Warn("slow_report")
}

// IsInvalidParameter reports whether err is a caller error.
func IsInvalidParameter(err error) bool {
	return errors.Is(err, utils.ErrInvalidParameter)
}

func singleYear(year int) []int { return []int{year} }
