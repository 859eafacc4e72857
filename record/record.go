// Package record runs the interactive review session in which the user
// marks, while the playhead advances, which ranges of a recording to keep
package record

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reclip-dev/reclip/config"
	"github.com/reclip-dev/reclip/internal/models"
	"github.com/reclip-dev/reclip/internal/playback"
	"github.com/reclip-dev/reclip/internal/timeline"
	"github.com/reclip-dev/reclip/store"
)

// tickInterval is how often the playhead display refreshes. The engine
// itself is only consulted on user input, so a coarse tick is fine.
const tickInterval = 100 * time.Millisecond

// persistEvery throttles autosaves of the in-progress timeline.
const persistEvery = 30 * time.Second

type tickMsg time.Time

// Recorder is the bubbletea model for a review session. It owns the
// timeline engine and feeds it positions reported by the player; the
// engine never reads a clock itself.
type Recorder struct {
	db          store.DB
	opts        *config.Config
	project     *models.Project
	engine      *timeline.Engine
	player      playback.Player
	progress    progress.Model
	help        help.Model
	keymap      keymap
	lastPersist time.Time
	err         error
	quitting    bool
}

// New prepares a review session over the given project. Previously saved
// segments are loaded into the engine; a restored timeline never has an
// open recording bracket.
func New(
	db store.DB,
	cfg *config.Config,
	project *models.Project,
	player playback.Player,
) *Recorder {
	engine := timeline.New()
	engine.ReplaceSegments(project.Segments)

	return &Recorder{
		db:          db,
		opts:        cfg,
		project:     project,
		engine:      engine,
		player:      player,
		progress:    progress.New(progress.WithDefaultGradient()),
		help:        help.New(),
		keymap:      defaultKeymap,
		lastPersist: time.Now(),
	}
}

func (r *Recorder) Init() tea.Cmd {
	r.player.Play()

	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// persist copies the engine's current partition into the project record
// and saves it.
func (r *Recorder) persist() error {
	r.project.Segments = r.engine.Segments()
	r.project.Duration = r.player.Duration()

	return r.db.SaveProject(r.project)
}

// finalize closes any open bracket at the current position, caps the
// timeline at the player-reported duration, and saves.
func (r *Recorder) finalize() error {
	if r.engine.Recording() {
		r.engine.StopIncluding(r.player.Position())
	}

	if d := r.player.Duration(); d > 0 {
		r.engine.FinalizeSegments(d)
		r.project.Finalized = true
	}

	return r.persist()
}

// Err returns the error that ended the session, if any.
func (r *Recorder) Err() error {
	return r.err
}
