package playlist

import (
	"github.com/moldovancsaba/fancamera-sub002/internal/domain"
)

// Buckets holds the per-category candidate lists. Input order is preserved
// within each bucket.
type Buckets struct {
	Landscape []domain.Submission
	Square    []domain.Submission
	Portrait  []domain.Submission
}

// Partition splits the candidate pool into per-category buckets. The second
// return value counts submissions excluded as unclassifiable so the caller
// can log them; they are never silently lost inside this package.
func Partition(pool []domain.Submission) (Buckets, int) {
	var b Buckets
	dropped := 0

	for _, sub := range pool {
		switch Classify(sub.Width, sub.Height) {
		case domain.CategoryLandscape:
			b.Landscape = append(b.Landscape, sub)
		case domain.CategorySquare:
			b.Square = append(b.Square, sub)
		case domain.CategoryPortrait:
			b.Portrait = append(b.Portrait, sub)
		default:
			dropped++
		}
	}

	return b, dropped
}
