package playlist

import (
	"github.com/moldovancsaba/fancamera-sub002/internal/domain"
)

// GroupSizes configures how many same-shape images fill one mosaic slide.
// The group size defines the mosaic layout hint one-to-one ("3-up", "6-up").
type GroupSizes struct {
	Portrait int
	Square   int
}

// DefaultGroupSizes returns the stock mosaic layouts.
func DefaultGroupSizes() GroupSizes {
	return GroupSizes{Portrait: 3, Square: 6}
}

func (g GroupSizes) normalized() GroupSizes {
	def := DefaultGroupSizes()
	if g.Portrait <= 0 {
		g.Portrait = def.Portrait
	}
	if g.Square <= 0 {
		g.Square = def.Square
	}
	return g
}

// Chunk consumes items front to back in non-overlapping groups of exactly
// size n, preserving order. A trailing remainder smaller than n is left
// unconsumed rather than padded or emitted short; those items wait for a
// later composition call when the pool may have grown.
func Chunk(items []domain.Submission, n int) [][]domain.Submission {
	if n <= 0 {
		return nil
	}

	var chunks [][]domain.Submission
	for len(items) >= n {
		chunks = append(chunks, items[:n:n])
		items = items[n:]
	}

	return chunks
}
