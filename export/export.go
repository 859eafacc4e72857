// Package export splices the kept segments of a project into an output
// media file by driving ffmpeg.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/reclip-dev/reclip/internal/models"
	"github.com/reclip-dev/reclip/internal/timeline"
)

// ErrNothingIncluded is returned when a project has no kept segments to
// splice together.
var ErrNothingIncluded = errors.New("no segments are marked as kept")

// Job pairs a project with the path its spliced output should be written
// to.
type Job struct {
	Project *models.Project
	Output  string
}

// Exporter runs export jobs through ffmpeg.
type Exporter struct {
	FFmpegPath  string
	Concurrency int
}

func New(ffmpegPath string, concurrency int) *Exporter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}

	if concurrency < 1 {
		concurrency = 1
	}

	return &Exporter{
		FFmpegPath:  ffmpegPath,
		Concurrency: concurrency,
	}
}

// Run executes all jobs, at most Concurrency at a time. The first failure
// cancels the jobs that have not started yet.
func (e *Exporter) Run(ctx context.Context, jobs []Job) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.Concurrency)

	for _, job := range jobs {
		g.Go(func() error {
			return e.process(ctx, job)
		})
	}

	return g.Wait()
}

func (e *Exporter) process(ctx context.Context, job Job) error {
	kept := Kept(job.Project.Segments)
	if len(kept) == 0 {
		return fmt.Errorf("%w: %s", ErrNothingIncluded, job.Project.Name)
	}

	outputDir := filepath.Dir(job.Output)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, e.FFmpegPath,
		"-y",
		"-i", job.Project.MediaPath,
		"-filter_complex", FilterGraph(kept),
		"-map", "[out]",
		job.Output,
	)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("exporting %s: %w", job.Project.Name, err)
	}

	return nil
}

// FilterGraph builds the ffmpeg filter_complex expression that trims each
// kept segment out of the source and concatenates them in order.
func FilterGraph(kept []timeline.Segment) string {
	var filterParts []string

	if len(kept) == 1 {
		filterParts = append(
			filterParts,
			fmt.Sprintf(
				"[0:a]atrim=start=%.3f:end=%.3f,asetpts=PTS-STARTPTS[out]",
				kept[0].Start,
				kept[0].End))
	} else {
		for idx, seg := range kept {
			part := fmt.Sprintf(
				"[0:a]atrim=start=%.3f:end=%.3f,asetpts=PTS-STARTPTS[s%d]",
				seg.Start,
				seg.End,
				idx)
			filterParts = append(filterParts, part)
		}

		var inputs string
		for i := range kept {
			inputs += fmt.Sprintf("[s%d]", i)
		}

		concat := fmt.Sprintf("%sconcat=n=%d:v=0:a=1[out]", inputs, len(kept))
		filterParts = append(filterParts, concat)
	}

	return strings.Join(filterParts, ";")
}

// Kept filters a segment list down to the kept ranges.
func Kept(segments []timeline.Segment) []timeline.Segment {
	var kept []timeline.Segment

	for _, s := range segments {
		if s.Included && s.Valid() {
			kept = append(kept, s)
		}
	}

	return kept
}

// KeptDuration sums the kept seconds of a segment list.
func KeptDuration(segments []timeline.Segment) float64 {
	var total float64

	for _, s := range Kept(segments) {
		total += s.Duration()
	}

	return total
}

// DefaultOutputPath derives an output file name from the source media path.
func DefaultOutputPath(mediaPath, format string) string {
	base := mediaPath

	if ext := filepath.Ext(mediaPath); ext != "" {
		base = strings.TrimSuffix(mediaPath, ext)
	}

	return base + "_reclipped." + format
}
