package models

import (
	"time"

	"github.com/reclip-dev/reclip/internal/timeline"
)

// Project is the persisted form of one recording and its kept/skipped
// partition. The open recording bracket is deliberately not part of this
// record: a reloaded project always starts with no bracket open.
type Project struct {
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	Name      string             `json:"name"`
	MediaPath string             `json:"media_path"`
	Segments  []timeline.Segment `json:"segments"`
	Duration  float64            `json:"duration"`
	Finalized bool               `json:"finalized"`
}
