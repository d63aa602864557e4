package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/coursefetch"
)

// Ensure LoggingExtractor implements coursefetch.SupplementExtractor.
var _ coursefetch.SupplementExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a SupplementExtractor with logging.
type LoggingExtractor struct {
	next   coursefetch.SupplementExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next coursefetch.SupplementExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractSupplements delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractSupplements(html string) (links coursefetch.SupplementLinks, err error) {
	defer func(begin time.Time) {
		e.logger.Info("supplement extraction",
			"bytes", len(html),
			"extensions", len(links),
			"links", links.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractSupplements(html)
}

// ExtractSupplementsFromReader delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractSupplementsFromReader(r io.Reader, contentType string) (links coursefetch.SupplementLinks, err error) {
	defer func(begin time.Time) {
		e.logger.Info("supplement extraction",
			"contentType", contentType,
			"extensions", len(links),
			"links", links.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractSupplementsFromReader(r, contentType)
}
