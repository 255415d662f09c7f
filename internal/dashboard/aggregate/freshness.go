package aggregate

import "time"

// InSync reports whether lastUpdate lies within threshold of now, in either direction.
// An unknown lastUpdate is never in sync.
func InSync(now time.Time, lastUpdate time.Time, threshold time.Duration) bool {
	if lastUpdate.IsZero() {
		return false
	}
	diff := now.Sub(lastUpdate)
	if diff < 0 {
		diff = -diff
	}
	return diff <= threshold
}
