package training

import (
	"context"

	"github.com/fittrack/fittrack/internal/calendar"
	"github.com/fittrack/fittrack/internal/streak"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// streakLookbackDays bounds how far back the streak walk can reach.
const streakLookbackDays = 365

type Analyzer struct {
	repo sessionsRepo
}

func NewAnalyzer(repo sessionsRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

// TrainingLoads fetches the trailing 28-day window of sessions and
// computes the acute/chronic loads and the workload ratio.
func (a *Analyzer) TrainingLoads(ctx context.Context, userID int, ref calendar.Day) (_ *Loads, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.training.loads")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("ref", ref.String()))

	from, to := calendar.TrailingRange(ref, 28)
	sessions, err := a.repo.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	loads := ComputeLoads(sessions, ref)
	return &loads, nil
}

// WeekSessions returns the sessions in the trailing week ending at ref.
func (a *Analyzer) WeekSessions(ctx context.Context, userID int, ref calendar.Day) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.training.weekSessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from, to := calendar.WeekRange(ref)
	return a.repo.ListRange(ctx, userID, from, to)
}

// Streak counts the consecutive days ending at ref with at least one
// logged session.
func (a *Analyzer) Streak(ctx context.Context, userID int, ref calendar.Day) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.training.streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("ref", ref.String()))

	from, to := calendar.TrailingRange(ref, streakLookbackDays)
	active, err := a.repo.ActiveDates(ctx, userID, from, to)
	if err != nil {
		return 0, err
	}

	return streak.Compute(active, ref), nil
}
