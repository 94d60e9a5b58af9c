package comparison

import (
	"fmt"
	"math"
	"time"

	"github.com/2beens/fitsnap/internal/measurements"
	"github.com/2beens/fitsnap/internal/photos"
	"github.com/2beens/fitsnap/internal/strength"
)

const (
	// measurement deltas below this magnitude are treated as noise
	bodyDeltaDeadZone = 0.1
	// at most this many body rows fit the stats bar
	maxBodyStatEntries = 4

	daysPerMonth = 30.44
)

// bodyStatTypes is the fixed display order of the body category. One
// side per pair is enough for the compact bar.
var bodyStatTypes = []measurements.Type{
	measurements.TypeChest,
	measurements.TypeWaist,
	measurements.TypeHips,
	measurements.TypeBicepsLeft,
	measurements.TypeThighLeft,
	measurements.TypeNeck,
	measurements.TypeShoulders,
}

// StatsInput is everything the engine needs to derive display data
// for one comparison.
type StatsInput struct {
	// Photos in slot order: first is "before", last is "after"
	Photos     []photos.ProgressPhoto
	ViewFilter photos.ViewType // empty when no filter is active
	Categories []StatCategory

	SeriesByType map[measurements.Type][]measurements.Entry
	Strength     *strength.Report
}

// ComputeStats derives the per-category display strings. The result
// is nil when fewer than two photos are selected or no category is
// enabled; a category missing from the result had no derivable data.
func ComputeStats(in StatsInput) map[StatCategory][]string {
	if len(in.Photos) < 2 || len(in.Categories) == 0 {
		return nil
	}

	first := in.Photos[0]
	last := in.Photos[len(in.Photos)-1]

	stats := make(map[StatCategory][]string)
	for _, category := range in.Categories {
		var datum []string
		switch category {
		case StatDuration:
			datum = durationStat(first, last, len(in.Photos), in.ViewFilter)
		case StatWeight:
			datum = weightStat(first, last, in.SeriesByType[measurements.TypeWeight])
		case StatBody:
			datum = bodyStat(first, last, in.SeriesByType)
		case StatStrength:
			datum = strengthStat(in.Strength)
		}
		if len(datum) > 0 {
			stats[category] = datum
		}
	}

	if len(stats) == 0 {
		return nil
	}
	return stats
}

func durationStat(first, last photos.ProgressPhoto, photoCount int, viewFilter photos.ViewType) []string {
	days := daySpan(first.TakenAt, last.TakenAt)
	datum := []string{formatDaySpan(days)}
	if photoCount > 2 {
		datum = append(datum, fmt.Sprintf("%d photos", photoCount))
	}
	if viewFilter != "" {
		datum = append(datum, viewFilter.DisplayName())
	}
	return datum
}

func weightStat(first, last photos.ProgressPhoto, series []measurements.Entry) []string {
	firstWeight, firstOK := resolveWeight(first, series)
	lastWeight, lastOK := resolveWeight(last, series)

	switch {
	case firstOK && lastOK:
		return []string{fmt.Sprintf(
			"%.1f → %.1f kg (%+.1f kg)",
			firstWeight, lastWeight, lastWeight-firstWeight,
		)}
	case firstOK:
		return []string{fmt.Sprintf("%.1f kg", firstWeight)}
	case lastOK:
		return []string{fmt.Sprintf("%.1f kg", lastWeight)}
	default:
		return nil
	}
}

// resolveWeight prefers the weight embedded in the photo at shoot
// time; the series matcher is a fallback only.
func resolveWeight(photo photos.ProgressPhoto, series []measurements.Entry) (float64, bool) {
	if photo.BodyWeightKg != nil {
		return *photo.BodyWeightKg, true
	}
	return measurements.FindClosest(series, photo.TakenAt, measurements.DefaultToleranceDays)
}

func bodyStat(first, last photos.ProgressPhoto, seriesByType map[measurements.Type][]measurements.Entry) []string {
	var datum []string
	for _, measurementType := range bodyStatTypes {
		if len(datum) == maxBodyStatEntries {
			break
		}
		series := seriesByType[measurementType]
		before, beforeOK := measurements.FindClosest(series, first.TakenAt, measurements.DefaultToleranceDays)
		after, afterOK := measurements.FindClosest(series, last.TakenAt, measurements.DefaultToleranceDays)
		if !beforeOK || !afterOK {
			continue
		}
		delta := after - before
		if math.Abs(delta) < bodyDeltaDeadZone {
			continue
		}
		datum = append(datum, fmt.Sprintf("%s %+.1f cm", measurementType.ShortName(), delta))
	}
	return datum
}

func strengthStat(report *strength.Report) []string {
	if report == nil {
		return nil
	}
	var datum []string
	if report.Score > 0 {
		datum = append(datum, fmt.Sprintf("Strength score %d", int(math.Round(report.Score))))
	}
	if report.TotalPRs > 0 {
		datum = append(datum, fmt.Sprintf("%d PRs", report.TotalPRs))
		if report.RecentPRs > 0 {
			datum = append(datum, fmt.Sprintf("%d PRs in last 30 days", report.RecentPRs))
		}
	}
	return datum
}

func daySpan(a, b time.Time) int {
	return int(math.Round(math.Abs(b.Sub(a).Hours() / 24)))
}

// formatDaySpan renders a day count the way the composite shows it:
// exact days under a month, rounded months under a year, years and
// leftover months beyond that.
func formatDaySpan(days int) string {
	switch {
	case days == 0:
		return "Same day"
	case days == 1:
		return "1 day"
	case days < 30:
		return fmt.Sprintf("%d days", days)
	case days < 365:
		months := int(math.Round(float64(days) / daysPerMonth))
		if months <= 1 {
			return "1 month"
		}
		return fmt.Sprintf("%d months", months)
	default:
		years := days / 365
		months := int(math.Round(float64(days%365) / daysPerMonth))
		if months >= 12 {
			years++
			months = 0
		}
		if months == 0 {
			return fmt.Sprintf("%dy", years)
		}
		return fmt.Sprintf("%dy %dm", years, months)
	}
}
