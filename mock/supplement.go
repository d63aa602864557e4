package mock

import (
	"context"
	"io"

	"github.com/fwojciec/coursefetch"
)

var _ coursefetch.SupplementExtractor = (*SupplementExtractor)(nil)

// SupplementExtractor is a mock implementation of coursefetch.SupplementExtractor.
type SupplementExtractor struct {
	ExtractSupplementsFn           func(html string) (coursefetch.SupplementLinks, error)
	ExtractSupplementsFromReaderFn func(r io.Reader, contentType string) (coursefetch.SupplementLinks, error)
}

func (e *SupplementExtractor) ExtractSupplements(html string) (coursefetch.SupplementLinks, error) {
	return e.ExtractSupplementsFn(html)
}

func (e *SupplementExtractor) ExtractSupplementsFromReader(r io.Reader, contentType string) (coursefetch.SupplementLinks, error) {
	return e.ExtractSupplementsFromReaderFn(r, contentType)
}

var _ coursefetch.TargetPlanner = (*TargetPlanner)(nil)

// TargetPlanner is a mock implementation of coursefetch.TargetPlanner.
type TargetPlanner struct {
	PlanFn func(ctx context.Context, links coursefetch.SupplementLinks, dir string) ([]coursefetch.Target, error)
}

func (p *TargetPlanner) Plan(ctx context.Context, links coursefetch.SupplementLinks, dir string) ([]coursefetch.Target, error) {
	return p.PlanFn(ctx, links, dir)
}
