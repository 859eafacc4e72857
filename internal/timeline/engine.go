package timeline

import (
	"cmp"
	"slices"
)

// MergeTolerance is the maximum gap, in seconds, at which two same-label
// segments are considered adjacent and merged into one. It absorbs the
// rounding drift that accumulates from repeated time-to-range conversions.
const MergeTolerance = 1e-6

// recordState tracks whether a begin/stop recording bracket is open.
type recordState int

const (
	idle recordState = iota
	recording
)

// Engine owns the segment list for one recording and implements
// tape-recorder semantics on top of it: marking a range as kept overwrites
// whatever previously occupied that range, while everything outside the
// range is preserved.
//
// The engine is synchronous and not safe for concurrent mutation. Every
// operation returns a copy of the resulting segment list; the internal
// slice is never handed out.
type Engine struct {
	segments     []Segment
	state        recordState
	bracketStart float64
	// flippedID identifies the segment tail that BeginIncluding
	// speculatively switched to included; zero when no flip is pending.
	// The close-out reverts it so material beyond the bracket keeps its
	// pre-bracket label.
	flippedID int
	nextID    int
}

// New returns an empty timeline engine.
func New() *Engine {
	return &Engine{nextID: 1}
}

// BeginIncluding opens a "keep" recording bracket at time at, clamped to
// [0, total]. The timeline is extrapolated to total so the bracket remains
// meaningful if the caller never stops it. A non-positive total is a no-op.
//
// If a bracket is already open it is closed at the new time first, then a
// fresh bracket is opened.
//
// Adjacent same-label segments are deliberately not merged here: merging
// while the bracket is open would erase pre-existing segment boundaries in
// the region being recorded over.
func (e *Engine) BeginIncluding(at, total float64) []Segment {
	if total <= 0 {
		return e.Segments()
	}

	if e.state == recording {
		e.closeBracket(clampTime(at, total))
	}

	t := clampTime(at, total)

	e.flippedID = 0

	switch {
	case len(e.segments) == 0:
		e.segments = append(e.segments,
			Segment{ID: e.newID(), Start: 0, End: t, Included: false},
			Segment{ID: e.newID(), Start: t, End: total, Included: true},
		)
	default:
		i, ok := e.indexAt(t)
		if ok {
			if !e.segments[i].Included {
				e.flippedID = e.splitAt(i, t, true)
			}
			// An included segment already extends past t, so the
			// speculative assumption is that nothing needs to change
			// until the bracket closes.
		} else if last := e.segments[len(e.segments)-1]; t >= last.End {
			e.segments = append(e.segments,
				Segment{ID: e.newID(), Start: last.End, End: t, Included: false},
				Segment{ID: e.newID(), Start: t, End: total, Included: true},
			)
		}
	}

	e.compact()

	e.state = recording
	e.bracketStart = t

	return e.Segments()
}

// StopIncluding closes the recording bracket opened by BeginIncluding,
// overwriting the bracketed range with a single included segment.
//
// Without a matching begin (e.g. after restoring a saved timeline) it falls
// back to a point-in-time split: the portion of the containing included
// segment from at onward becomes excluded. Calling it on an empty timeline
// is a no-op.
func (e *Engine) StopIncluding(at float64) []Segment {
	if len(e.segments) == 0 {
		e.state = idle
		e.flippedID = 0

		return e.Segments()
	}

	if e.state == recording {
		e.closeBracket(at)
		return e.Segments()
	}

	i, ok := e.indexAt(at)
	if ok && e.segments[i].Included {
		e.splitAt(i, at, false)
		e.compact()
	}

	e.mergeAdjacent()

	return e.Segments()
}

// ToggleSegment flips the kept/skipped label of the segment identified by
// id. Unknown ids are ignored.
func (e *Engine) ToggleSegment(id int) []Segment {
	for i := range e.segments {
		if e.segments[i].ID == id {
			// an explicit toggle supersedes a pending speculative flip
			if id == e.flippedID {
				e.flippedID = 0
			}

			e.segments[i].Included = !e.segments[i].Included
			e.mergeAdjacent()

			break
		}
	}

	return e.Segments()
}

// SplitSegment splits the segment containing at into two segments with the
// same label. It is a no-op unless at is strictly interior to a segment.
func (e *Engine) SplitSegment(at float64) []Segment {
	for i := range e.segments {
		s := e.segments[i]
		if at > s.Start && at < s.End {
			e.splitAt(i, at, s.Included)
			e.compact()

			break
		}
	}

	return e.Segments()
}

// SegmentAt returns the segment whose half-open range contains t. A time
// equal to the end of the final segment resolves to that segment, so
// stopping exactly at end-of-media does not fall into a gap.
func (e *Engine) SegmentAt(t float64) (Segment, bool) {
	i, ok := e.indexAt(t)
	if !ok {
		return Segment{}, false
	}

	return e.segments[i], true
}

// ReplaceSegments swaps in an entirely new segment list, typically one
// restored from persistence. The input is clamped, pruned of empty
// segments, and sorted. Any open recording bracket is discarded: a freshly
// loaded timeline never has a dangling bracket.
func (e *Engine) ReplaceSegments(segments []Segment) []Segment {
	replacement := make([]Segment, 0, len(segments))

	maxID := 0

	for _, s := range segments {
		s = s.clamp()
		if !s.Valid() {
			continue
		}

		if s.ID > maxID {
			maxID = s.ID
		}

		replacement = append(replacement, s)
	}

	sortSegments(replacement)

	e.segments = replacement
	e.state = idle
	e.bracketStart = 0
	e.flippedID = 0

	if maxID >= e.nextID {
		e.nextID = maxID + 1
	}

	return e.Segments()
}

// FinalizeSegments caps every segment at the now-known true duration of the
// recording, drops anything that collapses to nothing, fills a trailing gap
// with a skipped segment, and re-merges. It should be called once the real
// duration is known and before exporting.
func (e *Engine) FinalizeSegments(total float64) []Segment {
	if total <= 0 || len(e.segments) == 0 {
		return e.Segments()
	}

	for i := range e.segments {
		if e.segments[i].End > total {
			e.segments[i].End = total
		}
	}

	e.compact()

	if n := len(e.segments); n > 0 {
		last := &e.segments[n-1]
		if total-last.End > MergeTolerance {
			e.segments = append(e.segments, Segment{
				ID:    e.newID(),
				Start: last.End,
				End:   total,
			})
		} else {
			last.End = total
		}
	}

	e.mergeAdjacent()

	return e.Segments()
}

// Segments returns a copy of the current segment list, ordered by start
// time.
func (e *Engine) Segments() []Segment {
	return slices.Clone(e.segments)
}

// IncludedSegments returns only the kept segments, ordered by start time.
// This is the list the exporter splices together.
func (e *Engine) IncludedSegments() []Segment {
	var kept []Segment

	for _, s := range e.segments {
		if s.Included {
			kept = append(kept, s)
		}
	}

	return kept
}

// Recording reports whether a begin/stop bracket is currently open.
func (e *Engine) Recording() bool {
	return e.state == recording
}

// KeptDuration returns the total length in seconds of all kept segments.
func (e *Engine) KeptDuration() float64 {
	var total float64

	for _, s := range e.segments {
		if s.Included {
			total += s.Duration()
		}
	}

	return total
}

// closeBracket overwrites the bracketed range with a single included
// segment and returns the engine to the idle state.
func (e *Engine) closeBracket(at float64) {
	if at < 0 {
		at = 0
	}

	e.revertFlip()

	from, to := e.bracketStart, at
	if to < from {
		from, to = to, from
	}

	e.replaceRange(from, to)

	e.state = idle
	e.bracketStart = 0

	e.mergeAdjacent()
}

// replaceRange rewrites every segment against the half-open range
// [from, to) and inserts a single included segment covering it. Segments
// strictly containing the range are split into two remnants, segments
// overlapping one edge are trimmed at that edge, and segments fully inside
// the range are dropped. A zero-length range is a no-op.
func (e *Engine) replaceRange(from, to float64) {
	if to <= from {
		return
	}

	out := make([]Segment, 0, len(e.segments)+2)

	for _, s := range e.segments {
		switch {
		case s.End <= from || s.Start >= to:
			out = append(out, s)
		case s.Start < from && s.End > to:
			out = append(out,
				Segment{ID: s.ID, Start: s.Start, End: from, Included: s.Included},
				Segment{ID: e.newID(), Start: to, End: s.End, Included: s.Included},
			)
		case s.Start < from:
			s.End = from
			out = append(out, s)
		case s.End > to:
			s.Start = to
			out = append(out, s)
		default:
			// fully consumed by the new range
		}
	}

	out = append(out, Segment{ID: e.newID(), Start: from, End: to, Included: true})

	e.segments = out

	e.compact()
	e.mergeAdjacent()
}

// splitAt splits the segment at index i at time t and returns the identity
// of the new tail. The portion before t keeps its label and identity; the
// portion from t onward gets a fresh identity and the supplied label. Either
// portion may come out empty and is discarded by the caller's compact pass.
func (e *Engine) splitAt(i int, t float64, includedAfter bool) int {
	s := e.segments[i]

	after := Segment{ID: e.newID(), Start: t, End: s.End, Included: includedAfter}

	e.segments[i].End = t

	e.segments = slices.Insert(e.segments, i+1, after)

	return after.ID
}

// revertFlip restores the pre-bracket label of the segment tail that
// BeginIncluding speculatively included, so that the subsequent range
// replacement only keeps what the bracket actually covered.
func (e *Engine) revertFlip() {
	if e.flippedID == 0 {
		return
	}

	for i := range e.segments {
		if e.segments[i].ID == e.flippedID {
			e.segments[i].Included = false
			break
		}
	}

	e.flippedID = 0
}

// indexAt locates the segment containing t using the boundary-tolerant
// lookup rule: a time equal to the end of the final segment resolves to
// that segment.
func (e *Engine) indexAt(t float64) (int, bool) {
	for i, s := range e.segments {
		if s.Contains(t) {
			return i, true
		}
	}

	if n := len(e.segments); n > 0 && t == e.segments[n-1].End {
		return n - 1, true
	}

	return 0, false
}

// compact removes zero-duration segments and restores start-time order.
func (e *Engine) compact() {
	e.segments = slices.DeleteFunc(e.segments, func(s Segment) bool {
		return !s.Valid()
	})

	sortSegments(e.segments)
}

// mergeAdjacent coalesces consecutive segments that carry the same label
// and touch or overlap within MergeTolerance. Merging an already-merged
// list is a no-op.
func (e *Engine) mergeAdjacent() {
	if len(e.segments) < 2 {
		return
	}

	merged := e.segments[:1]

	for _, s := range e.segments[1:] {
		last := &merged[len(merged)-1]

		if s.Included == last.Included && s.Start-last.End <= MergeTolerance {
			if s.End > last.End {
				last.End = s.End
			}

			continue
		}

		merged = append(merged, s)
	}

	e.segments = merged
}

func (e *Engine) newID() int {
	id := e.nextID
	e.nextID++

	return id
}

func clampTime(t, total float64) float64 {
	if t < 0 {
		return 0
	}

	if t > total {
		return total
	}

	return t
}

func sortSegments(segments []Segment) {
	slices.SortStableFunc(segments, func(a, b Segment) int {
		return cmp.Compare(a.Start, b.Start)
	})
}
