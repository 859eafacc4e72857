package record

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/reclip-dev/reclip/internal/timeutil"
)

const stripWidth = 60

var (
	keptStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	skippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	recStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	positionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func (r *Recorder) View() string {
	if r.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render(r.project.Name))

	if r.engine.Recording() {
		s.WriteString("  " + recStyle.Render("● KEEPING"))
	}

	if !r.player.Playing() {
		s.WriteString("  [Paused]")
	}

	pos, dur := r.player.Position(), r.player.Duration()

	s.WriteString("\n\n")
	s.WriteString(positionStyle.Render(fmt.Sprintf(
		"%s / %s  (kept %s)",
		timeutil.FormatSeconds(pos),
		timeutil.FormatSeconds(dur),
		timeutil.FormatSeconds(r.engine.KeptDuration()),
	)))

	s.WriteString("\n\n")

	var percent float64
	if dur > 0 {
		percent = pos / dur
	}

	s.WriteString(r.progress.ViewAs(percent))

	s.WriteString("\n")
	s.WriteString(r.timelineView())
	s.WriteString(r.sessionHelpView())

	return s.String()
}

// timelineView renders the kept/skipped partition as a strip of colored
// cells, one run per segment, proportional to segment length.
func (r *Recorder) timelineView() string {
	segments := r.engine.Segments()
	if len(segments) == 0 {
		return skippedStyle.Render(strings.Repeat("░", stripWidth))
	}

	total := segments[len(segments)-1].End
	if total <= 0 {
		return skippedStyle.Render(strings.Repeat("░", stripWidth))
	}

	var s strings.Builder

	used := 0

	for i, seg := range segments {
		cells := int(seg.Duration() / total * stripWidth)
		if cells < 1 {
			cells = 1
		}

		// the last run absorbs rounding leftovers
		if i == len(segments)-1 {
			cells = stripWidth - used
		}

		// never overflow the strip, even with many sub-cell runs
		if cells > stripWidth-used {
			cells = stripWidth - used
		}

		if cells < 1 {
			continue
		}

		used += cells

		if seg.Included {
			s.WriteString(keptStyle.Render(strings.Repeat("█", cells)))
		} else {
			s.WriteString(skippedStyle.Render(strings.Repeat("░", cells)))
		}
	}

	return s.String()
}

func (r *Recorder) sessionHelpView() string {
	return "\n\n" + r.help.ShortHelpView([]key.Binding{
		r.keymap.toggleRecord,
		r.keymap.togglePlay,
		r.keymap.toggleKeep,
		r.keymap.split,
		r.keymap.seekBack,
		r.keymap.seekForward,
		r.keymap.quit,
	})
}
