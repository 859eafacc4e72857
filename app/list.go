package app

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/reclip-dev/reclip/export"
	"github.com/reclip-dev/reclip/internal/models"
	"github.com/reclip-dev/reclip/internal/timeline"
	"github.com/reclip-dev/reclip/internal/timeutil"
	"github.com/reclip-dev/reclip/internal/ui"
)

const noProjectsMsg = "No projects found. Start one with: reclip NAME --media FILE --duration TIME"

// printSegmentsTable prints a project's timeline to the command-line.
func printSegmentsTable(w io.Writer, segments []timeline.Segment) {
	tableBody := make([][]string, len(segments))

	for i, seg := range segments {
		statusText := ui.Green("kept")
		if !seg.Included {
			statusText = ui.Red("skipped")
		}

		row := []string{
			fmt.Sprintf("%d", seg.ID),
			timeutil.FormatSeconds(seg.Start),
			timeutil.FormatSeconds(seg.End),
			timeutil.FormatSeconds(seg.Duration()),
			statusText,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"ID", "START", "END", "LENGTH", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// printProjectsTable prints a table of projects to the command-line.
func printProjectsTable(w io.Writer, projects []*models.Project) {
	tableBody := make([][]string, len(projects))

	for i, p := range projects {
		statusText := ui.Yellow("in progress")
		if p.Finalized {
			statusText = ui.Green("finalized")
		}

		row := []string{
			p.Name,
			p.MediaPath,
			timeutil.FormatSeconds(p.Duration),
			timeutil.FormatSeconds(export.KeptDuration(p.Segments)),
			fmt.Sprintf("%d", len(p.Segments)),
			p.UpdatedAt.Format("Jan 02, 2006 03:04 PM"),
			statusText,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"NAME", "MEDIA", "DURATION", "KEPT", "SEGMENTS", "UPDATED", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listProjects prints out a table of projects.
func listProjects(projects []*models.Project) error {
	if len(projects) == 0 {
		pterm.Info.Println(noProjectsMsg)
		return nil
	}

	printProjectsTable(os.Stdout, projects)

	return nil
}

// printExportPlan prints the cut list for each job without running ffmpeg.
func printExportPlan(jobs []export.Job) {
	for _, job := range jobs {
		kept := export.Kept(job.Project.Segments)

		pterm.Printfln(
			"%s: %d kept range(s), %s of %s -> %s",
			ui.Highlight(job.Project.Name),
			len(kept),
			ui.Green(timeutil.FormatSeconds(export.KeptDuration(job.Project.Segments))),
			timeutil.FormatSeconds(job.Project.Duration),
			ui.Yellow(job.Output),
		)

		for _, seg := range kept {
			pterm.Printfln(
				"  %s - %s",
				timeutil.FormatSeconds(seg.Start),
				timeutil.FormatSeconds(seg.End),
			)
		}
	}
}
