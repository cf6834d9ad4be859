package playlist

import (
	"github.com/moldovancsaba/fancamera-sub002/internal/domain"
)

// ExtractIDs flattens a playlist into the ids of every member submission,
// in display order. The play-count writer applies increments in exactly
// this order.
func ExtractIDs(p domain.Playlist) []string {
	var ids []string
	for _, unit := range p {
		for _, sub := range unit.Submissions {
			ids = append(ids, sub.ID)
		}
	}
	return ids
}
