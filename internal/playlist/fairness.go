package playlist

import (
	"sort"

	"github.com/moldovancsaba/fancamera-sub002/internal/domain"
)

// SortByFairness stable-sorts submissions in place, ascending by
// (play count, created at). A submission with a lower play count is always
// scheduled before a higher one in the same category; ties go to the older
// submission.
func SortByFairness(subs []domain.Submission) {
	sort.SliceStable(subs, func(i, j int) bool {
		if subs[i].PlayCount != subs[j].PlayCount {
			return subs[i].PlayCount < subs[j].PlayCount
		}
		return subs[i].CreatedAt.Before(subs[j].CreatedAt)
	})
}
