package playlist

import (
	"fmt"
	"time"

	"github.com/moldovancsaba/fancamera-sub002/internal/domain"
)

var testEpoch = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func sub(id string, width, height, playCount int) domain.Submission {
	return domain.Submission{
		ID:        id,
		EventID:   "evt-1",
		Width:     width,
		Height:    height,
		PlayCount: playCount,
		CreatedAt: testEpoch,
	}
}

func landscapePool(counts ...int) []domain.Submission {
	pool := make([]domain.Submission, 0, len(counts))
	for i, c := range counts {
		s := sub(fmt.Sprintf("land-%d", i), 1920, 1080, c)
		s.CreatedAt = testEpoch.Add(time.Duration(i) * time.Minute)
		pool = append(pool, s)
	}
	return pool
}
