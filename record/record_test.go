package record

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reclip-dev/reclip/config"
	"github.com/reclip-dev/reclip/internal/models"
	"github.com/reclip-dev/reclip/internal/playback"
	"github.com/reclip-dev/reclip/internal/timeline"
)

// storeMock records saves without touching disk.
type storeMock struct {
	saved *models.Project
}

func (m *storeMock) SaveProject(p *models.Project) error { m.saved = p; return nil }

func (m *storeMock) GetProject(name string) (*models.Project, error) { return nil, nil }

func (m *storeMock) ListProjects() ([]*models.Project, error) { return nil, nil }

func (m *storeMock) DeleteProjects(names []string) error { return nil }

func (m *storeMock) Close() error { return nil }

func (m *storeMock) Open() error { return nil }

func newTestRecorder(segments []timeline.Segment) (*Recorder, *storeMock, *playback.Clock) {
	db := &storeMock{}

	player := playback.NewClock(60, 1)

	cfg := &config.Config{
		Playback: config.PlaybackConfig{SeekStep: 5, Rate: 1},
	}

	project := &models.Project{
		Name:      "test",
		MediaPath: "/tmp/test.mkv",
		Segments:  segments,
	}

	return New(db, cfg, project, player), db, player
}

func keyMsg(k string) tea.KeyMsg {
	if k == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestSpaceTogglesRecordingBracket(t *testing.T) {
	r, _, player := newTestRecorder(nil)

	player.Seek(10)

	r.Update(keyMsg(" "))

	if !r.engine.Recording() {
		t.Fatal("space should open a recording bracket")
	}

	player.Seek(25)

	r.Update(keyMsg(" "))

	if r.engine.Recording() {
		t.Fatal("second space should close the bracket")
	}

	if included, ok := labelAt(r.engine.Segments(), 15); !ok || !included {
		t.Errorf("expected [10,25) to be kept, got %v", r.engine.Segments())
	}
}

func TestSeekKeysMoveThePlayer(t *testing.T) {
	r, _, player := newTestRecorder(nil)

	player.Seek(20)

	r.Update(tea.KeyMsg{Type: tea.KeyRight})

	if got := player.Position(); got != 25 {
		t.Errorf("position after seek forward = %v, want 25", got)
	}

	r.Update(tea.KeyMsg{Type: tea.KeyLeft})
	r.Update(tea.KeyMsg{Type: tea.KeyLeft})

	if got := player.Position(); got != 15 {
		t.Errorf("position after seeking back twice = %v, want 15", got)
	}
}

func TestToggleKeepFlipsSegmentUnderPlayhead(t *testing.T) {
	r, _, player := newTestRecorder([]timeline.Segment{
		{ID: 1, Start: 0, End: 30, Included: false},
		{ID: 2, Start: 30, End: 60, Included: true},
	})

	player.Seek(10)

	r.Update(keyMsg("t"))

	segments := r.engine.Segments()
	if len(segments) != 1 || !segments[0].Included {
		t.Errorf("expected one kept run after toggle, got %v", segments)
	}
}

func TestSplitKeyDividesSegment(t *testing.T) {
	r, _, player := newTestRecorder([]timeline.Segment{
		{ID: 1, Start: 0, End: 60, Included: true},
	})

	player.Seek(24)

	r.Update(keyMsg("s"))

	segments := r.engine.Segments()
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments after split, got %v", segments)
	}

	if segments[0].End != 24 || segments[1].Start != 24 {
		t.Errorf("split at wrong position: %v", segments)
	}
}

func TestQuitFinalizesAndSaves(t *testing.T) {
	r, db, player := newTestRecorder(nil)

	player.Seek(10)
	r.Update(keyMsg(" "))

	player.Seek(40)

	_, cmd := r.Update(keyMsg("q"))

	if cmd == nil {
		t.Error("quit should produce a command")
	}

	if db.saved == nil {
		t.Fatal("quit must persist the project")
	}

	if !db.saved.Finalized {
		t.Error("quit must finalize the timeline")
	}

	segments := db.saved.Segments
	if len(segments) == 0 {
		t.Fatal("no segments were saved")
	}

	last := segments[len(segments)-1]
	if last.End != 60 {
		t.Errorf("finalized timeline ends at %v, want 60", last.End)
	}

	if included, ok := labelAt(segments, 20); !ok || !included {
		t.Errorf("expected [10,40) to be kept, got %v", segments)
	}
}

func TestTimelineStripNeverOverflows(t *testing.T) {
	// 120 alternating half-second segments would each claim at least one
	// cell if runs were not clamped to the remaining width.
	segments := make([]timeline.Segment, 0, 120)
	for i := 0; i < 120; i++ {
		segments = append(segments, timeline.Segment{
			ID:       i + 1,
			Start:    float64(i) * 0.5,
			End:      float64(i+1) * 0.5,
			Included: i%2 == 0,
		})
	}

	r, _, _ := newTestRecorder(segments)

	strip := r.timelineView()

	cells := strings.Count(strip, "█") + strings.Count(strip, "░")
	if cells > stripWidth {
		t.Errorf("timeline strip is %d cells wide, want at most %d", cells, stripWidth)
	}
}

// labelAt returns the label of the segment containing t.
func labelAt(segments []timeline.Segment, t float64) (included, found bool) {
	for _, s := range segments {
		if s.Contains(t) {
			return s.Included, true
		}
	}

	return false, false
}
