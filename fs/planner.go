package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fwojciec/coursefetch"
)

// DefaultDirPerm is the permission used for directories created by Planner.
const DefaultDirPerm os.FileMode = 0755

// fallbackNameLen is the length of the random suffix used when a basename
// sanitizes to nothing.
const fallbackNameLen = 8

// Ensure Planner implements coursefetch.TargetPlanner at compile time.
var _ coursefetch.TargetPlanner = (*Planner)(nil)

// Planner maps supplements to files under an output directory.
type Planner struct {
	baseURL string
	prefix  string
	dryRun  bool
	perm    os.FileMode
}

// Option configures a Planner.
type Option func(*Planner)

// WithBaseURL sets the URL relative supplement links are resolved against.
// An empty base URL resolves them against coursefetch.DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(p *Planner) {
		p.baseURL = baseURL
	}
}

// WithPrefix sets a prefix prepended to every file name, e.g. a lecture
// number, so supplements of different lectures do not collide.
func WithPrefix(prefix string) Option {
	return func(p *Planner) {
		p.prefix = prefix
	}
}

// WithDryRun disables creation of the output directory.
func WithDryRun(dryRun bool) Option {
	return func(p *Planner) {
		p.dryRun = dryRun
	}
}

// WithDirPerm sets the permission bits for the output directory.
// Defaults to DefaultDirPerm.
func WithDirPerm(perm os.FileMode) Option {
	return func(p *Planner) {
		p.perm = perm
	}
}

// NewPlanner creates a new Planner.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{
		perm: DefaultDirPerm,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan resolves every supplement URL and assigns it a sanitized file name
// under dir, then makes sure dir exists unless the planner is a dry run.
//
// File names are <prefix><basename>.<ext> passed through
// coursefetch.CleanFilename. A basename that sanitizes to nothing gets a
// random name. Names already taken within the plan get a numeric suffix.
func (p *Planner) Plan(ctx context.Context, links coursefetch.SupplementLinks, dir string) ([]coursefetch.Target, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	targets := make([]coursefetch.Target, 0, links.Len())
	used := make(map[string]int)

	for _, ext := range links.Extensions() {
		cleanExt := coursefetch.CleanFilename(ext)
		for _, s := range links[ext] {
			resolved, err := p.resolve(s.URL)
			if err != nil {
				return nil, err
			}

			name := coursefetch.CleanFilename(p.prefix + s.Basename)
			if name == "" {
				name = "supplement_" + coursefetch.RandomString(fallbackNameLen)
			}

			filename := uniqueName(used, name, cleanExt)
			targets = append(targets, coursefetch.Target{
				URL:  resolved,
				Path: filepath.Join(dir, filename),
			})
		}
	}

	if !p.dryRun {
		if err := EnsureDir(dir, p.perm); err != nil {
			return nil, err
		}
	}

	return targets, nil
}

func (p *Planner) resolve(link string) (string, error) {
	if p.baseURL == "" {
		return coursefetch.AbsoluteURL(link)
	}
	return coursefetch.ResolveURL(p.baseURL, link)
}

// uniqueName joins name and ext, appending -1, -2, ... to name when the
// result was already handed out.
func uniqueName(used map[string]int, name, ext string) string {
	filename := joinExt(name, ext)
	count, taken := used[filename]
	used[filename] = count + 1
	if !taken {
		return filename
	}

	for {
		candidate := joinExt(name+"-"+strconv.Itoa(count), ext)
		count++
		if _, exists := used[candidate]; !exists {
			used[filename] = count
			used[candidate] = 1
			return candidate
		}
	}
}

func joinExt(name, ext string) string {
	if ext == "" {
		return name
	}
	return name + "." + ext
}
