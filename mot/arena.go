package mot

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Handle is a stable reference to a track stored in Arena. Handles are never reused.
type Handle int

// Arena owns tracks. Cost and association functions work on transient []*Track
// resolved from handles, so ownership stays here.
// Arena is not safe for concurrent use.
type Arena struct {
	tracks map[Handle]*Track
	next   Handle
}

// NewArena creates empty arena
func NewArena() *Arena {
	return &Arena{
		tracks: make(map[Handle]*Track),
	}
}

// Insert stores track and returns its handle
func (arena *Arena) Insert(track *Track) Handle {
	handle := arena.next
	arena.next++
	arena.tracks[handle] = track
	return handle
}

// Get returns track by handle. Unknown handle is a programming error and panics.
func (arena *Arena) Get(handle Handle) *Track {
	track, ok := arena.tracks[handle]
	if !ok {
		panic(errors.Errorf("mot: unknown track handle %d", handle))
	}
	return track
}

// Lookup returns track by handle and whether it exists
func (arena *Arena) Lookup(handle Handle) (*Track, bool) {
	track, ok := arena.tracks[handle]
	return track, ok
}

// Remove drops track from arena
func (arena *Arena) Remove(handle Handle) {
	delete(arena.tracks, handle)
}

// Len returns number of stored tracks
func (arena *Arena) Len() int {
	return len(arena.tracks)
}

// Handles returns all handles in insertion order
func (arena *Arena) Handles() []Handle {
	handles := lo.Keys(arena.tracks)
	slices.Sort(handles)
	return handles
}

// Filter returns handles (in insertion order) of tracks satisfying predicate
func (arena *Arena) Filter(predicate func(track *Track) bool) []Handle {
	return lo.Filter(arena.Handles(), func(handle Handle, _ int) bool {
		return predicate(arena.tracks[handle])
	})
}

// Resolve maps handles to tracks. Order is preserved, so index i of the result
// (and of any cost matrix built from it) corresponds to handles[i].
func (arena *Arena) Resolve(handles []Handle) []*Track {
	return lo.Map(handles, func(handle Handle, _ int) *Track {
		return arena.Get(handle)
	})
}

// PruneRemoved drops tracks in Removed state and returns them
func (arena *Arena) PruneRemoved() []*Track {
	removed := make([]*Track, 0)
	for _, handle := range arena.Filter(func(track *Track) bool { return track.GetState() == TrackStateRemoved }) {
		removed = append(removed, arena.tracks[handle])
		delete(arena.tracks, handle)
	}
	return removed
}
