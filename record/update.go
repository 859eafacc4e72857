package record

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

func (r *Recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return r.handleKeyPress(msg)

	case tickMsg:
		return r.handleTick(time.Time(msg))

	case tea.WindowSizeMsg:
		r.progress.Width = msg.Width - 8
		r.help.Width = msg.Width
	}

	return r, nil
}

func (r *Recorder) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if r.quitting {
		return r, nil
	}

	// save the in-progress timeline periodically to facilitate recovery
	// on sudden shutdowns
	if now.Sub(r.lastPersist) >= persistEvery {
		r.lastPersist = now

		if err := r.persist(); err != nil {
			slog.Error("autosave failed", slog.Any("error", err))
		}
	}

	return r, tick()
}

func (r *Recorder) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slog.Debug("key input", slog.String("msg", spew.Sdump(msg)))

	pos := r.player.Position()

	switch {
	case key.Matches(msg, r.keymap.toggleRecord):
		if r.engine.Recording() {
			r.engine.StopIncluding(pos)
		} else {
			r.engine.BeginIncluding(pos, r.player.Duration())
		}

	case key.Matches(msg, r.keymap.togglePlay):
		if r.player.Playing() {
			r.player.Pause()
		} else {
			r.player.Play()
		}

	case key.Matches(msg, r.keymap.toggleKeep):
		if seg, ok := r.engine.SegmentAt(pos); ok {
			r.engine.ToggleSegment(seg.ID)
		}

	case key.Matches(msg, r.keymap.split):
		r.engine.SplitSegment(pos)

	case key.Matches(msg, r.keymap.seekBack):
		r.player.Seek(pos - r.opts.Playback.SeekStep)

	case key.Matches(msg, r.keymap.seekForward):
		r.player.Seek(pos + r.opts.Playback.SeekStep)

	case key.Matches(msg, r.keymap.quit):
		r.quitting = true

		r.player.Pause()

		if err := r.finalize(); err != nil {
			r.err = err
		}

		return r, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return r, nil
}
