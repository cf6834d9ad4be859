package playlist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moldovancsaba/fancamera-sub002/internal/domain"
)

func TestComposeLandscapeOnlyHonorsFairnessAndLimit(t *testing.T) {
	t.Parallel()

	// 5 landscape submissions with play counts 4..0, shuffled by count so
	// fairness ordering, not input order, decides the schedule.
	pool := landscapePool(3, 0, 4, 1, 2)

	pl, dropped := Compose(pool, 3, DefaultGroupSizes())

	assert.Zero(t, dropped)
	require.Len(t, pl, 3)
	for _, unit := range pl {
		assert.Equal(t, domain.UnitSingle, unit.Kind)
		assert.Equal(t, domain.CategoryLandscape, unit.Category)
		assert.Empty(t, unit.Layout)
		require.Len(t, unit.Submissions, 1)
	}
	assert.Equal(t, 0, pl[0].Submissions[0].PlayCount)
	assert.Equal(t, 1, pl[1].Submissions[0].PlayCount)
	assert.Equal(t, 2, pl[2].Submissions[0].PlayCount)
}

func TestComposeTooFewPortraitsYieldsEmptyPlaylist(t *testing.T) {
	t.Parallel()

	pool := []domain.Submission{
		sub("p1", 1080, 1920, 0),
		sub("p2", 1080, 1920, 0),
	}

	pl, dropped := Compose(pool, 5, DefaultGroupSizes())

	assert.Zero(t, dropped)
	assert.Empty(t, pl, "2 portraits cannot fill a 3-up mosaic and there is nothing else")
}

func TestComposeInterleavesSingleAndMosaic(t *testing.T) {
	t.Parallel()

	pool := []domain.Submission{sub("land", 1920, 1080, 0)}
	for i := 0; i < 6; i++ {
		pool = append(pool, sub(fmt.Sprintf("sq-%d", i), 1000, 1000, 0))
	}

	pl, dropped := Compose(pool, 2, DefaultGroupSizes())

	assert.Zero(t, dropped)
	require.Len(t, pl, 2)

	assert.Equal(t, domain.UnitSingle, pl[0].Kind)
	assert.Equal(t, domain.CategoryLandscape, pl[0].Category)

	assert.Equal(t, domain.UnitMosaic, pl[1].Kind)
	assert.Equal(t, domain.CategorySquare, pl[1].Category)
	assert.Equal(t, "6-up", pl[1].Layout)
	require.Len(t, pl[1].Submissions, 6)

	assert.Len(t, ExtractIDs(pl), 7)
}

func TestComposeRoundRobinAcrossAllThreeShapes(t *testing.T) {
	t.Parallel()

	var pool []domain.Submission
	for i := 0; i < 2; i++ {
		pool = append(pool, sub(fmt.Sprintf("land-%d", i), 1920, 1080, 0))
	}
	for i := 0; i < 6; i++ {
		pool = append(pool, sub(fmt.Sprintf("port-%d", i), 1080, 1920, 0))
	}
	for i := 0; i < 6; i++ {
		pool = append(pool, sub(fmt.Sprintf("sq-%d", i), 1000, 1000, 0))
	}

	pl, _ := Compose(pool, 10, DefaultGroupSizes())

	// Iteration 1: landscape single, portrait 3-up, square 6-up.
	// Iteration 2: landscape single, portrait 3-up; square is exhausted.
	// Iteration 3: nothing left above threshold, loop ends.
	require.Len(t, pl, 5)
	assert.Equal(t, domain.UnitSingle, pl[0].Kind)
	assert.Equal(t, domain.CategoryPortrait, pl[1].Category)
	assert.Equal(t, "3-up", pl[1].Layout)
	assert.Equal(t, domain.CategorySquare, pl[2].Category)
	assert.Equal(t, domain.UnitSingle, pl[3].Kind)
	assert.Equal(t, domain.CategoryPortrait, pl[4].Category)
}

func TestComposeNeverPlacesASubmissionTwice(t *testing.T) {
	t.Parallel()

	var pool []domain.Submission
	for i := 0; i < 5; i++ {
		pool = append(pool, sub(fmt.Sprintf("land-%d", i), 1920, 1080, i))
	}
	for i := 0; i < 8; i++ {
		pool = append(pool, sub(fmt.Sprintf("port-%d", i), 1080, 1920, i))
	}
	for i := 0; i < 13; i++ {
		pool = append(pool, sub(fmt.Sprintf("sq-%d", i), 1000, 1000, i))
	}

	pl, _ := Compose(pool, 50, DefaultGroupSizes())

	seen := map[string]bool{}
	for _, id := range ExtractIDs(pl) {
		require.False(t, seen[id], "submission %s placed twice", id)
		seen[id] = true
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	t.Parallel()

	var pool []domain.Submission
	for i := 0; i < 4; i++ {
		pool = append(pool, sub(fmt.Sprintf("land-%d", i), 1920, 1080, i%2))
		pool = append(pool, sub(fmt.Sprintf("port-%d", i), 1080, 1920, i%3))
		pool = append(pool, sub(fmt.Sprintf("sq-%d", i), 1000, 1000, 0))
	}

	first, _ := Compose(pool, 7, DefaultGroupSizes())
	second, _ := Compose(pool, 7, DefaultGroupSizes())

	assert.Equal(t, first, second)
}

func TestComposeEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pool  []domain.Submission
		limit int
	}{
		{name: "empty pool", pool: nil, limit: 10},
		{name: "zero limit", pool: landscapePool(0, 1), limit: 0},
		{name: "negative limit", pool: landscapePool(0, 1), limit: -3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pl, dropped := Compose(tt.pool, tt.limit, DefaultGroupSizes())
			assert.Empty(t, pl)
			assert.Zero(t, dropped)
		})
	}
}

func TestComposeDefaultsMissingDimensionsToLandscape(t *testing.T) {
	t.Parallel()

	pool := []domain.Submission{sub("broken", 0, 0, 0)}

	pl, dropped := Compose(pool, DefaultLimit, DefaultGroupSizes())

	assert.Zero(t, dropped)
	require.Len(t, pl, 1)
	assert.Equal(t, domain.CategoryLandscape, pl[0].Category)
	assert.Equal(t, "broken", pl[0].Submissions[0].ID)
}

func TestComposeNormalizesGroupSizes(t *testing.T) {
	t.Parallel()

	var pool []domain.Submission
	for i := 0; i < 3; i++ {
		pool = append(pool, sub(fmt.Sprintf("port-%d", i), 1080, 1920, 0))
	}

	// Zero-valued sizes fall back to the defaults, so 3 portraits still
	// fill one mosaic.
	pl, _ := Compose(pool, 5, GroupSizes{})

	require.Len(t, pl, 1)
	assert.Equal(t, "3-up", pl[0].Layout)
}
