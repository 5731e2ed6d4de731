// Package batch averages a fixed set of regions across many image files.
//
// Each file is handled by its own goroutine. Results are joined by position,
// so the output order always matches the input order regardless of which
// file finishes first.
package batch

import (
	"fmt"
	"image"
	"io"
	"log"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/region-color/internal/imaging"
	"github.com/ironsheep/region-color/internal/region"
)

// FileResult holds the averaged colors for one file, aligned with the
// regions passed to Run.
type FileResult struct {
	Filename string
	Colors   []imaging.RGBColor
}

// Loader decodes an image by path. *imaging.ImageCache satisfies it.
type Loader interface {
	Load(path string) (image.Image, error)
}

// Runner fans out region averaging over files.
type Runner struct {
	loader Loader
	jobs   int
	debug  *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithJobs caps the number of files processed at once. Zero or a negative
// value means one goroutine per file with no cap.
func WithJobs(n int) Option {
	return func(r *Runner) { r.jobs = n }
}

// WithDebugLog sends per-file timing and color details to l.
func WithDebugLog(l *log.Logger) Option {
	return func(r *Runner) { r.debug = l }
}

// NewRunner creates a runner that decodes files through loader.
func NewRunner(loader Loader, opts ...Option) *Runner {
	r := &Runner{
		loader: loader,
		debug:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run decodes every file and averages every region in it.
//
// Files run concurrently; regions within a file run sequentially. A failure in
// any file fails the whole batch and no results are returned. Workers already
// running are allowed to finish, and the error reported is the one from the
// earliest failing file in input order.
func (r *Runner) Run(files []string, regions []region.Region) ([]FileResult, error) {
	results := make([]FileResult, len(files))
	errs := make([]error, len(files))

	var g errgroup.Group
	if r.jobs > 0 {
		g.SetLimit(r.jobs)
	}

	for i, file := range files {
		i, file := i, file
		own := slices.Clone(regions)
		g.Go(func() error {
			res, err := r.processFile(file, own)
			if err != nil {
				errs[i] = err
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, e := range errs {
			if e != nil {
				return nil, e
			}
		}
		return nil, err
	}

	return results, nil
}

func (r *Runner) processFile(file string, regions []region.Region) (FileResult, error) {
	start := time.Now()

	img, err := r.loader.Load(file)
	if err != nil {
		return FileResult{}, err
	}
	w, h := imaging.Dimensions(img)
	r.debug.Printf("decoded %s (%dx%d) in %s", file, w, h, time.Since(start))

	colors, err := imaging.AverageAll(img, regions)
	if err != nil {
		return FileResult{}, fmt.Errorf("%s: %w", file, err)
	}
	for i, c := range colors {
		r.debug.Printf("%s: region %s -> %s", file, regions[i], c)
	}

	return FileResult{Filename: file, Colors: colors}, nil
}
