package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/coursefetch"
)

// Ensure LoggingPlanner implements coursefetch.TargetPlanner.
var _ coursefetch.TargetPlanner = (*LoggingPlanner)(nil)

// LoggingPlanner wraps a TargetPlanner with logging.
type LoggingPlanner struct {
	next   coursefetch.TargetPlanner
	logger *slog.Logger
}

// NewLoggingPlanner creates a new LoggingPlanner.
func NewLoggingPlanner(next coursefetch.TargetPlanner, logger *slog.Logger) *LoggingPlanner {
	return &LoggingPlanner{next: next, logger: logger}
}

// Plan delegates to the wrapped planner and logs the operation.
func (p *LoggingPlanner) Plan(ctx context.Context, links coursefetch.SupplementLinks, dir string) (targets []coursefetch.Target, err error) {
	defer func(begin time.Time) {
		p.logger.InfoContext(ctx, "download plan",
			"dir", dir,
			"links", links.Len(),
			"targets", len(targets),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Plan(ctx, links, dir)
}
