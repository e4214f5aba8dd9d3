package recovery

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fittrack/fittrack/internal/calendar"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert saves the check-in for its date, replacing an existing one.
func (r *Repo) Upsert(ctx context.Context, userID int, checkIn CheckIn) (_ *CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	checkIn.CreatedAt = time.Now()
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO recovery_check_in
				(user_id, check_in_date, sleep_hours, recovery_score, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id, check_in_date) DO UPDATE
				SET sleep_hours = EXCLUDED.sleep_hours,
					recovery_score = EXCLUDED.recovery_score,
					notes = EXCLUDED.notes
			RETURNING id;`,
		userID, checkIn.Date.Time(), checkIn.SleepHours,
		checkIn.RecoveryScore, checkIn.Notes, checkIn.CreatedAt,
	).Scan(&checkIn.ID)
	if err != nil {
		return nil, fmt.Errorf("upsert check-in: %w", err)
	}

	span.SetAttributes(attribute.Int("checkIn.id", checkIn.ID))
	return &checkIn, nil
}

func (r *Repo) GetForDate(ctx context.Context, userID int, date calendar.Day) (_ *CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.getForDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var c CheckIn
	var checkInDate time.Time
	err = r.db.QueryRow(
		ctx,
		`SELECT id, check_in_date, sleep_hours, recovery_score, notes, created_at
			FROM recovery_check_in
			WHERE user_id = $1 AND check_in_date = $2;`,
		userID, date.Time(),
	).Scan(&c.ID, &checkInDate, &c.SleepHours, &c.RecoveryScore, &c.Notes, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCheckInNotFound
	} else if err != nil {
		return nil, err
	}

	c.Date = calendar.DayOf(checkInDate)
	return &c, nil
}

// Summary aggregates the check-ins in the trailing week ending at ref.
func (r *Repo) Summary(ctx context.Context, userID int, ref calendar.Day) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from, to := calendar.WeekRange(ref)

	var s Summary
	var avgSleep, avgScore *float64
	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*), AVG(sleep_hours), AVG(recovery_score)
			FROM recovery_check_in
			WHERE user_id = $1 AND check_in_date >= $2 AND check_in_date <= $3;`,
		userID, from.Time(), to.Time(),
	).Scan(&s.DaysCheckedIn, &avgSleep, &avgScore)
	if err != nil {
		return nil, fmt.Errorf("check-in summary: %w", err)
	}

	if avgSleep != nil {
		rounded := math.Round(*avgSleep*10) / 10
		s.AvgSleepHours = &rounded
	}
	if avgScore != nil {
		rounded := math.Round(*avgScore*10) / 10
		s.AvgRecoveryScore = &rounded
	}

	span.SetAttributes(attribute.Int("checkIns.count", s.DaysCheckedIn))
	return &s, nil
}
