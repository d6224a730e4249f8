// Package streak computes the current consecutive-completion streak from a
// report history.
package streak

import "github.com/statusvillain/statusvillain/internal/models"

// Current counts consecutive reports from the head of history (most recent
// first) whose completion flag is set, stopping at the first incomplete one.
// An empty history or an incomplete latest report yields 0. This is the
// current streak, not the longest one.
func Current(history []models.StatusReport) int {
	n := 0
	for _, r := range history {
		if !r.HasCompletedYesterday {
			break
		}
		n++
	}
	return n
}
