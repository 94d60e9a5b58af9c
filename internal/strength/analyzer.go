package strength

import (
	"context"
	"time"

	"github.com/2beens/fitsnap/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=strength_test

type exercisesRepo interface {
	ListAll(ctx context.Context, userID int) ([]Exercise, error)
}

// recentPRWindow marks how far back a personal record still counts
// as a recent one.
const recentPRWindow = 30 * 24 * time.Hour

// Report is the condensed strength signal of a user: the overall
// score plus personal record counts.
type Report struct {
	Score     float64 `json:"score"`
	TotalPRs  int     `json:"totalPrs"`
	RecentPRs int     `json:"recentPrs"`
}

type Analyzer struct {
	repo exercisesRepo
}

func NewAnalyzer(repo exercisesRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

// Report aggregates all logged sets into a single strength signal.
// The score is the sum of the best estimated one rep max per exercise
// (Epley formula). A personal record is a set whose kilos strictly
// exceed every earlier set of the same exercise; the first set of an
// exercise is a baseline, not a record.
func (a *Analyzer) Report(ctx context.Context, userID int, now time.Time) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.strength.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	exercises, err := a.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	bestOneRepMax := make(map[string]float64)
	maxKilos := make(map[string]float64)
	recentCutoff := now.Add(-recentPRWindow)

	for _, ex := range exercises {
		oneRepMax := ex.Kilos * (1 + float64(ex.Reps)/30)
		if oneRepMax > bestOneRepMax[ex.ExerciseID] {
			bestOneRepMax[ex.ExerciseID] = oneRepMax
		}

		prevMax, seen := maxKilos[ex.ExerciseID]
		if seen && ex.Kilos > prevMax {
			report.TotalPRs++
			if ex.CreatedAt.After(recentCutoff) {
				report.RecentPRs++
			}
		}
		if !seen || ex.Kilos > prevMax {
			maxKilos[ex.ExerciseID] = ex.Kilos
		}
	}

	for _, oneRepMax := range bestOneRepMax {
		report.Score += oneRepMax
	}

	return report, nil
}
