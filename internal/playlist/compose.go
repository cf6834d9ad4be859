// Package playlist composes a bounded, ordered display sequence from an
// unordered pool of event photo submissions. Composition is a pure function
// over its input snapshot: no I/O, no retained state, deterministic for
// identical input. Persistence of submissions and play counts belongs to the
// caller.
package playlist

import (
	"fmt"

	"github.com/moldovancsaba/fancamera-sub002/internal/domain"
)

// DefaultLimit is used by callers when no playlist length is requested.
const DefaultLimit = 10

// Compose builds a playlist from the candidate pool, at most limit units
// long. Each category bucket is fairness-ordered, then production is
// interleaved round-robin: every iteration attempts one landscape single,
// one portrait mosaic and one square mosaic, in that priority order, so no
// shape dominates a display cycle. The loop ends when the budget is reached
// or an iteration emits nothing.
//
// The second return value counts pool items excluded as unclassifiable.
// A limit <= 0 yields an empty playlist, not an error.
func Compose(pool []domain.Submission, limit int, sizes GroupSizes) (domain.Playlist, int) {
	if limit <= 0 {
		return domain.Playlist{}, 0
	}

	sizes = sizes.normalized()

	buckets, dropped := Partition(pool)
	SortByFairness(buckets.Landscape)
	SortByFairness(buckets.Portrait)
	SortByFairness(buckets.Square)

	portraitUnits := Chunk(buckets.Portrait, sizes.Portrait)
	squareUnits := Chunk(buckets.Square, sizes.Square)

	playlist := domain.Playlist{}
	var li, pi, si int

	for len(playlist) < limit {
		emitted := 0

		if li < len(buckets.Landscape) && len(playlist) < limit {
			playlist = append(playlist, singleUnit(buckets.Landscape[li]))
			li++
			emitted++
		}
		if pi < len(portraitUnits) && len(playlist) < limit {
			playlist = append(playlist, mosaicUnit(domain.CategoryPortrait, portraitUnits[pi], sizes.Portrait))
			pi++
			emitted++
		}
		if si < len(squareUnits) && len(playlist) < limit {
			playlist = append(playlist, mosaicUnit(domain.CategorySquare, squareUnits[si], sizes.Square))
			si++
			emitted++
		}

		if emitted == 0 {
			break
		}
	}

	return playlist, dropped
}

func singleUnit(sub domain.Submission) domain.DisplayUnit {
	return domain.DisplayUnit{
		Kind:        domain.UnitSingle,
		Category:    domain.CategoryLandscape,
		Submissions: []domain.Submission{sub},
	}
}

func mosaicUnit(category domain.ShapeCategory, subs []domain.Submission, size int) domain.DisplayUnit {
	return domain.DisplayUnit{
		Kind:        domain.UnitMosaic,
		Category:    category,
		Layout:      fmt.Sprintf("%d-up", size),
		Submissions: subs,
	}
}
