package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reclip-dev/reclip/internal/models"
	"github.com/reclip-dev/reclip/internal/timeline"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "reclip.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func sampleProject(name string) *models.Project {
	return &models.Project{
		Name:      name,
		MediaPath: "/media/" + name + ".mkv",
		Duration:  120,
		Segments: []timeline.Segment{
			{ID: 1, Start: 0, End: 30, Included: false},
			{ID: 2, Start: 30, End: 90, Included: true},
			{ID: 3, Start: 90, End: 120, Included: false},
		},
	}
}

func TestProjectRoundTrip(t *testing.T) {
	c := newTestClient(t)

	p := sampleProject("lecture")

	if err := c.SaveProject(p); err != nil {
		t.Fatalf("saving project: %v", err)
	}

	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("save must stamp created/updated times")
	}

	got, err := c.GetProject("lecture")
	if err != nil {
		t.Fatalf("loading project: %v", err)
	}

	if diff := cmp.Diff(p.Segments, got.Segments); diff != "" {
		t.Errorf("segments did not round-trip (-want +got):\n%s", diff)
	}

	if got.MediaPath != p.MediaPath || got.Duration != p.Duration {
		t.Errorf("project metadata did not round-trip: %+v", got)
	}
}

func TestGetProjectMissing(t *testing.T) {
	c := newTestClient(t)

	_, err := c.GetProject("nope")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestListAndDeleteProjects(t *testing.T) {
	c := newTestClient(t)

	for _, name := range []string{"b-side", "a-side", "concert"} {
		if err := c.SaveProject(sampleProject(name)); err != nil {
			t.Fatalf("saving project %q: %v", name, err)
		}
	}

	projects, err := c.ListProjects()
	if err != nil {
		t.Fatalf("listing projects: %v", err)
	}

	// bolt cursors iterate keys in byte order
	want := []string{"a-side", "b-side", "concert"}
	for i, p := range projects {
		if p.Name != want[i] {
			t.Errorf("project %d = %q, want %q", i, p.Name, want[i])
		}
	}

	if err := c.DeleteProjects([]string{"a-side", "concert"}); err != nil {
		t.Fatalf("deleting projects: %v", err)
	}

	projects, err = c.ListProjects()
	if err != nil {
		t.Fatalf("listing projects: %v", err)
	}

	if len(projects) != 1 || projects[0].Name != "b-side" {
		t.Errorf("unexpected projects after delete: %+v", projects)
	}
}
