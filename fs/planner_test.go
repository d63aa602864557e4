package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/coursefetch"
	"github.com/fwojciec/coursefetch/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanner_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ coursefetch.TargetPlanner = fs.NewPlanner()
}

func TestPlanner_Plan(t *testing.T) {
	t.Parallel()

	t.Run("resolves URLs and names files by basename", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")
		links := coursefetch.SupplementLinks{
			"pdf": {
				{URL: "/learn/ml/01_slides.pdf", Basename: "01_slides"},
				{URL: "http://example.com/01_slides_LM-3dtexton.pdf", Basename: "01_slides_LM-3dtexton"},
			},
			"csv": {
				{URL: "data/housing.csv", Basename: "housing"},
			},
		}

		targets, err := fs.NewPlanner().Plan(context.Background(), links, dir)

		require.NoError(t, err)
		assert.Equal(t, []coursefetch.Target{
			{URL: "https://www.coursera.org/data/housing.csv", Path: filepath.Join(dir, "housing.csv")},
			{URL: "https://www.coursera.org/learn/ml/01_slides.pdf", Path: filepath.Join(dir, "01_slides.pdf")},
			{URL: "http://example.com/01_slides_LM-3dtexton.pdf", Path: filepath.Join(dir, "01_slides_LM-3dtexton.pdf")},
		}, targets)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("uses configured base URL and prefix", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		links := coursefetch.SupplementLinks{
			"pdf": {{URL: "slides.pdf", Basename: "slides"}},
		}
		planner := fs.NewPlanner(
			fs.WithBaseURL("https://example.com/course/week1/"),
			fs.WithPrefix("01 Intro "),
		)

		targets, err := planner.Plan(context.Background(), links, dir)

		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.Equal(t, "https://example.com/course/week1/slides.pdf", targets[0].URL)
		assert.Equal(t, filepath.Join(dir, "01_Intro_slides.pdf"), targets[0].Path)
	})

	t.Run("empty base URL resolves against default origin", func(t *testing.T) {
		t.Parallel()

		links := coursefetch.SupplementLinks{
			"pdf": {{URL: "/learn/ml/slides.pdf", Basename: "slides"}},
		}

		targets, err := fs.NewPlanner(fs.WithBaseURL(""), fs.WithDryRun(true)).Plan(context.Background(), links, t.TempDir())

		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.Equal(t, "https://www.coursera.org/learn/ml/slides.pdf", targets[0].URL)
	})

	t.Run("sanitizes basenames", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		links := coursefetch.SupplementLinks{
			"pdf": {{URL: "http://example.com/Q&A%20(final).pdf", Basename: "Q&A (final)"}},
		}

		targets, err := fs.NewPlanner().Plan(context.Background(), links, dir)

		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.Equal(t, filepath.Join(dir, "QA_final.pdf"), targets[0].Path)
	})

	t.Run("suffixes duplicate names", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		links := coursefetch.SupplementLinks{
			"pdf": {
				{URL: "http://example.com/a/slides.pdf", Basename: "slides"},
				{URL: "http://example.com/b/slides.pdf", Basename: "slides"},
				{URL: "http://example.com/c/slides.pdf", Basename: "slides"},
			},
		}

		targets, err := fs.NewPlanner().Plan(context.Background(), links, dir)

		require.NoError(t, err)
		require.Len(t, targets, 3)
		assert.Equal(t, filepath.Join(dir, "slides.pdf"), targets[0].Path)
		assert.Equal(t, filepath.Join(dir, "slides-1.pdf"), targets[1].Path)
		assert.Equal(t, filepath.Join(dir, "slides-2.pdf"), targets[2].Path)
	})

	t.Run("empty sanitized basename gets random name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		links := coursefetch.SupplementLinks{
			"pdf": {{URL: "http://example.com/(((.pdf", Basename: "((("}},
		}

		targets, err := fs.NewPlanner().Plan(context.Background(), links, dir)

		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.Regexp(t, `^supplement_[A-Za-z0-9]{8}\.pdf$`, filepath.Base(targets[0].Path))
	})

	t.Run("dry run does not create directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")
		links := coursefetch.SupplementLinks{
			"pdf": {{URL: "slides.pdf", Basename: "slides"}},
		}

		targets, err := fs.NewPlanner(fs.WithDryRun(true)).Plan(context.Background(), links, dir)

		require.NoError(t, err)
		assert.Len(t, targets, 1)
		_, err = os.Stat(dir)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("empty links still create directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")

		targets, err := fs.NewPlanner().Plan(context.Background(), coursefetch.SupplementLinks{}, dir)

		require.NoError(t, err)
		assert.Empty(t, targets)
		_, err = os.Stat(dir)
		require.NoError(t, err)
	})

	t.Run("returns EINVALID for unparseable URL", func(t *testing.T) {
		t.Parallel()

		links := coursefetch.SupplementLinks{
			"pdf": {{URL: "/a%zz.pdf", Basename: "a%zz"}},
		}

		_, err := fs.NewPlanner().Plan(context.Background(), links, t.TempDir())

		require.Error(t, err)
		assert.Equal(t, coursefetch.EINVALID, coursefetch.ErrorCode(err))
	})

	t.Run("returns filesystem error unchanged", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		_, err := fs.NewPlanner().Plan(context.Background(), coursefetch.SupplementLinks{}, file)

		require.Error(t, err)
		assert.Equal(t, coursefetch.EINTERNAL, coursefetch.ErrorCode(err))
	})

	t.Run("returns context error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewPlanner().Plan(ctx, coursefetch.SupplementLinks{}, t.TempDir())

		require.ErrorIs(t, err, context.Canceled)
	})
}
