package playlist

import (
	"github.com/moldovancsaba/fancamera-sub002/internal/domain"
)

// Fallback dimensions for submissions with missing or broken metadata.
const (
	defaultWidth  = 1920
	defaultHeight = 1080
)

// Classify maps pixel dimensions to a display-shape category. The bands are
// deliberately wide so near-standard photos are never dropped from rotation;
// anything ambiguous falls back to landscape. Non-positive dimensions are
// treated as a landscape-sized placeholder, never as an error.
func Classify(width, height int) domain.ShapeCategory {
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}

	ratio := float64(width) / float64(height)

	switch {
	case ratio >= 0.4 && ratio <= 0.7:
		return domain.CategoryPortrait
	case ratio >= 0.8 && ratio <= 1.2:
		return domain.CategorySquare
	default:
		return domain.CategoryLandscape
	}
}
