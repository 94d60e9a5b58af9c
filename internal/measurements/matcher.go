package measurements

import (
	"math"
	"time"
)

// DefaultToleranceDays is the widest day distance at which a series
// entry still counts as a match for a photo timestamp. The boundary is
// exclusive: a distance of exactly DefaultToleranceDays is a miss.
const DefaultToleranceDays = 7

// FindClosest returns the value of the series entry whose recordedAt is
// nearest to target, as long as the distance is strictly below
// toleranceDays. Ties keep the first entry encountered. The second
// return value is false when nothing in the series is close enough.
func FindClosest(series []Entry, target time.Time, toleranceDays float64) (float64, bool) {
	if len(series) == 0 {
		return 0, false
	}

	bestDiff := math.Inf(1)
	bestValue := 0.0
	for _, entry := range series {
		diff := math.Abs(target.Sub(entry.RecordedAt).Hours() / 24)
		if diff < bestDiff {
			bestDiff = diff
			bestValue = entry.Value
		}
	}

	if bestDiff >= toleranceDays {
		return 0, false
	}
	return bestValue, true
}
