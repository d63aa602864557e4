package coursefetch

import "context"

// Target is a supplement resolved to an absolute URL and the local path a
// downloader should save it to.
type Target struct {
	URL  string
	Path string
}

// TargetPlanner maps extracted supplements to download targets.
type TargetPlanner interface {
	// Plan returns one target per supplement, placed under dir.
	// Extensions are visited in sorted order; within an extension the
	// supplement order is preserved.
	Plan(ctx context.Context, links SupplementLinks, dir string) ([]Target, error)
}
