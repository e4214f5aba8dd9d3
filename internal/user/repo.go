package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fittrack/fittrack/internal/energy"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, email, passwordHash string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u := User{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO users (email, password_hash, created_at)
			VALUES ($1, $2, $3)
			RETURNING id;`,
		u.Email, u.PasswordHash, u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(attribute.Int("user.id", u.ID))
	return &u, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	var u User
	err = r.db.QueryRow(
		ctx,
		`SELECT id, email, password_hash, created_at, sex, age, height_cm, weight_kg
			FROM users
			WHERE id = $1;`,
		id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.Sex, &u.Age, &u.HeightCm, &u.WeightKg)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var u User
	err = r.db.QueryRow(
		ctx,
		`SELECT id, email, password_hash, created_at, sex, age, height_cm, weight_kg
			FROM users
			WHERE email = $1;`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.Sex, &u.Age, &u.HeightCm, &u.WeightKg)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return &u, nil
}

// Profile returns only the fields the energy balance engine needs.
func (r *Repo) Profile(ctx context.Context, id int) (_ *energy.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	var p energy.Profile
	err = r.db.QueryRow(
		ctx,
		`SELECT sex, age, height_cm, weight_kg
			FROM users
			WHERE id = $1;`,
		id,
	).Scan(&p.Sex, &p.Age, &p.HeightCm, &p.WeightKg)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) UpdateProfile(ctx context.Context, id int, p energy.Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users
			SET sex = $1, age = $2, height_cm = $3, weight_kg = $4
			WHERE id = $5;`,
		p.Sex, p.Age, p.HeightCm, p.WeightKg, id,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
