package training

import (
	"context"
	"fmt"
	"time"

	"github.com/fittrack/fittrack/internal/calendar"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO training_session
				(user_id, session_date, type, duration_min, rpe, session_load, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		session.UserID, session.Date.Time(), session.Type,
		session.DurationMin, session.RPE, session.Load,
		session.Notes, session.CreatedAt,
	).Scan(&session.ID)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))
	return &session, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, session_date, type, duration_min, rpe, session_load, notes, created_at
			FROM training_session
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}
	return &sessions[0], nil
}

func (r *Repo) Update(ctx context.Context, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", session.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE training_session
			SET session_date = $1, type = $2, duration_min = $3, rpe = $4, session_load = $5, notes = $6
			WHERE id = $7 AND user_id = $8;`,
		session.Date.Time(), session.Type, session.DurationMin,
		session.RPE, session.Load, session.Notes,
		session.ID, session.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM training_session WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// List returns all sessions of a user, newest first.
func (r *Repo) List(ctx context.Context, userID int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, session_date, type, duration_min, rpe, session_load, notes, created_at
			FROM training_session
			WHERE user_id = $1
			ORDER BY session_date DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2sessions(rows)
}

// ListRange returns the sessions with a date in [from, to], both inclusive.
func (r *Repo) ListRange(ctx context.Context, userID int, from, to calendar.Day) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.listrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, session_date, type, duration_min, rpe, session_load, notes, created_at
			FROM training_session
			WHERE user_id = $1
				AND session_date >= $2
				AND session_date <= $3
			ORDER BY session_date DESC, id DESC;`,
		userID, from.Time(), to.Time(),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2sessions(rows)
}

// ActiveDates returns the set of dates in [from, to] with at least
// one logged session.
func (r *Repo) ActiveDates(ctx context.Context, userID int, from, to calendar.Day) (_ map[calendar.Day]bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.activedates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT session_date
			FROM training_session
			WHERE user_id = $1
				AND session_date >= $2
				AND session_date <= $3;`,
		userID, from.Time(), to.Time(),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	dates := make(map[calendar.Day]bool)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates[calendar.DayOf(date)] = true
	}
	return dates, nil
}

func rows2sessions(rows pgx.Rows) ([]Session, error) {
	sessions := make([]Session, 0)
	for rows.Next() {
		var s Session
		var date time.Time
		if err := rows.Scan(
			&s.ID, &s.UserID, &date, &s.Type,
			&s.DurationMin, &s.RPE, &s.Load,
			&s.Notes, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		s.Date = calendar.DayOf(date)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
