package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fittrack/fittrack/internal/calendar"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
)

// Log is one denormalized nutrition_log row: the rounded day totals for
// a date. A row exists only when at least one total is nonzero.
type Log struct {
	Date   calendar.Day `json:"date"`
	Totals Totals       `json:"totals"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CreateFood(ctx context.Context, food Food) (_ *Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.createFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	food.CreatedAt = time.Now()
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO food
				(name, brand, calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g,
				 verified, created_by, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		food.Name, food.Brand,
		food.Per100g.Calories, food.Per100g.Protein, food.Per100g.Carbs, food.Per100g.Fat,
		food.Verified, food.CreatedBy, food.CreatedAt,
	).Scan(&food.ID)
	if err != nil {
		return nil, fmt.Errorf("insert food: %w", err)
	}

	span.SetAttributes(attribute.Int("food.id", food.ID))
	return &food, nil
}

// GetFood returns a food visible to the user: either a global catalog
// entry or one the user created.
func (r *Repo) GetFood(ctx context.Context, userID, foodID int) (_ *Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.getFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("food.id", foodID))

	var f Food
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, brand, calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g,
				verified, created_by, created_at
			FROM food
			WHERE id = $1 AND (created_by IS NULL OR created_by = $2);`,
		foodID, userID,
	).Scan(
		&f.ID, &f.Name, &f.Brand,
		&f.Per100g.Calories, &f.Per100g.Protein, &f.Per100g.Carbs, &f.Per100g.Fat,
		&f.Verified, &f.CreatedBy, &f.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFoodNotFound
	} else if err != nil {
		return nil, err
	}
	return &f, nil
}

// SearchFoods matches the query against name and brand across the global
// catalog and the user's own foods, verified entries first.
func (r *Repo) SearchFoods(ctx context.Context, userID int, query string, limit int) (_ []Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.searchFoods")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, brand, calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g,
				verified, created_by, created_at
			FROM food
			WHERE (created_by IS NULL OR created_by = $1)
				AND (name ILIKE '%' || $2 || '%' OR brand ILIKE '%' || $2 || '%')
			ORDER BY verified DESC, name ASC
			LIMIT $3;`,
		userID, query, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []Food
	for rows.Next() {
		var f Food
		if err := rows.Scan(
			&f.ID, &f.Name, &f.Brand,
			&f.Per100g.Calories, &f.Per100g.Protein, &f.Per100g.Carbs, &f.Per100g.Fat,
			&f.Verified, &f.CreatedBy, &f.CreatedAt,
		); err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("foods.count", len(foods)))
	return foods, nil
}

// getOrCreateDiaryDay returns the diary day id for the user and date,
// creating the row when absent.
func (r *Repo) getOrCreateDiaryDay(ctx context.Context, userID int, date calendar.Day) (int, error) {
	var dayID int
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO diary_day (user_id, log_date)
			VALUES ($1, $2)
			ON CONFLICT (user_id, log_date) DO UPDATE SET log_date = EXCLUDED.log_date
			RETURNING id;`,
		userID, date.Time(),
	).Scan(&dayID)
	if err != nil {
		return 0, fmt.Errorf("get or create diary day: %w", err)
	}
	return dayID, nil
}

func (r *Repo) AddItem(ctx context.Context, userID int, item Item) (_ *Item, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addItem")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dayID, err := r.getOrCreateDiaryDay(ctx, userID, item.Date)
	if err != nil {
		return nil, err
	}

	item.CreatedAt = time.Now()
	if item.Food != nil {
		err = r.db.QueryRow(
			ctx,
			`INSERT INTO diary_item (diary_day_id, meal_type, food_id, grams, created_at)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id;`,
			dayID, item.MealType, item.Food.FoodID, item.Food.Grams, item.CreatedAt,
		).Scan(&item.ID)
	} else {
		err = r.db.QueryRow(
			ctx,
			`INSERT INTO diary_item
					(diary_day_id, meal_type, quick_name,
					 quick_calories, quick_protein, quick_carbs, quick_fat, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING id;`,
			dayID, item.MealType, item.Quick.Name,
			item.Quick.Macros.Calories, item.Quick.Macros.Protein,
			item.Quick.Macros.Carbs, item.Quick.Macros.Fat,
			item.CreatedAt,
		).Scan(&item.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("insert diary item: %w", err)
	}

	span.SetAttributes(attribute.Int("item.id", item.ID))
	return &item, nil
}

func (r *Repo) GetItem(ctx context.Context, userID, itemID int) (_ *Item, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.getItem")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("item.id", itemID))

	rows, err := r.db.Query(
		ctx,
		`SELECT di.id, dd.log_date, di.meal_type, di.created_at,
				di.food_id, di.grams,
				f.name, f.brand, f.calories_per_100g, f.protein_per_100g, f.carbs_per_100g, f.fat_per_100g,
				di.quick_name, di.quick_calories, di.quick_protein, di.quick_carbs, di.quick_fat
			FROM diary_item di
			JOIN diary_day dd ON dd.id = di.diary_day_id
			LEFT JOIN food f ON f.id = di.food_id
			WHERE di.id = $1 AND dd.user_id = $2;`,
		itemID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := rows2items(rows, true)
	if err != nil {
		return nil, err
	}
	if len(items) != 1 {
		return nil, ErrDiaryItemNotFound
	}
	return &items[0], nil
}

// ListItems returns the user's diary items for the date, ordered by meal
// slot then insertion. Items with meal types this version does not know
// are dropped.
func (r *Repo) ListItems(ctx context.Context, userID int, date calendar.Day) (_ []Item, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.listItems")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT di.id, dd.log_date, di.meal_type, di.created_at,
				di.food_id, di.grams,
				f.name, f.brand, f.calories_per_100g, f.protein_per_100g, f.carbs_per_100g, f.fat_per_100g,
				di.quick_name, di.quick_calories, di.quick_protein, di.quick_carbs, di.quick_fat
			FROM diary_item di
			JOIN diary_day dd ON dd.id = di.diary_day_id
			LEFT JOIN food f ON f.id = di.food_id
			WHERE dd.user_id = $1 AND dd.log_date = $2
			ORDER BY di.meal_type ASC, di.created_at ASC;`,
		userID, date.Time(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := rows2items(rows, false)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("items.count", len(items)))
	return items, nil
}

func (r *Repo) UpdateItem(ctx context.Context, userID int, item *Item) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.updateItem")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("item.id", item.ID))

	var tag pgconn.CommandTag // reused for both variants
	if item.Food != nil {
		tag, err = r.db.Exec(
			ctx,
			`UPDATE diary_item di SET meal_type = $1, grams = $2
				FROM diary_day dd
				WHERE di.diary_day_id = dd.id AND di.id = $3 AND dd.user_id = $4
					AND di.food_id IS NOT NULL;`,
			item.MealType, item.Food.Grams, item.ID, userID,
		)
	} else {
		tag, err = r.db.Exec(
			ctx,
			`UPDATE diary_item di SET meal_type = $1, quick_name = $2,
					quick_calories = $3, quick_protein = $4, quick_carbs = $5, quick_fat = $6
				FROM diary_day dd
				WHERE di.diary_day_id = dd.id AND di.id = $7 AND dd.user_id = $8
					AND di.food_id IS NULL;`,
			item.MealType, item.Quick.Name,
			item.Quick.Macros.Calories, item.Quick.Macros.Protein,
			item.Quick.Macros.Carbs, item.Quick.Macros.Fat,
			item.ID, userID,
		)
	}
	if err != nil {
		return fmt.Errorf("update diary item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDiaryItemNotFound
	}
	return nil
}

func (r *Repo) DeleteItem(ctx context.Context, userID, itemID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.deleteItem")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("item.id", itemID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM diary_item di
			USING diary_day dd
			WHERE di.diary_day_id = dd.id AND di.id = $1 AND dd.user_id = $2;`,
		itemID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete diary item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDiaryItemNotFound
	}
	return nil
}

// GetTargets returns nil when the user has not set any targets yet.
func (r *Repo) GetTargets(ctx context.Context, userID int) (_ *Targets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.getTargets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var t Targets
	err = r.db.QueryRow(
		ctx,
		`SELECT calories, protein, carbs, fat
			FROM nutrition_targets
			WHERE user_id = $1;`,
		userID,
	).Scan(&t.Calories, &t.Protein, &t.Carbs, &t.Fat)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repo) UpsertTargets(ctx context.Context, userID int, t Targets) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.upsertTargets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO nutrition_targets (user_id, calories, protein, carbs, fat)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id) DO UPDATE
				SET calories = EXCLUDED.calories, protein = EXCLUDED.protein,
					carbs = EXCLUDED.carbs, fat = EXCLUDED.fat;`,
		userID, t.Calories, t.Protein, t.Carbs, t.Fat,
	)
	if err != nil {
		return fmt.Errorf("upsert nutrition targets: %w", err)
	}
	return nil
}

func (r *Repo) UpsertLog(ctx context.Context, userID int, date calendar.Day, totals Totals) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.upsertLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO nutrition_log (user_id, log_date, calories, protein, carbs, fat)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id, log_date) DO UPDATE
				SET calories = EXCLUDED.calories, protein = EXCLUDED.protein,
					carbs = EXCLUDED.carbs, fat = EXCLUDED.fat;`,
		userID, date.Time(), totals.Calories, totals.Protein, totals.Carbs, totals.Fat,
	)
	if err != nil {
		return fmt.Errorf("upsert nutrition log: %w", err)
	}
	return nil
}

func (r *Repo) DeleteLog(ctx context.Context, userID int, date calendar.Day) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.deleteLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`DELETE FROM nutrition_log WHERE user_id = $1 AND log_date = $2;`,
		userID, date.Time(),
	)
	if err != nil {
		return fmt.Errorf("delete nutrition log: %w", err)
	}
	return nil
}

// LogHistory returns the newest log rows first.
func (r *Repo) LogHistory(ctx context.Context, userID, limit int) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.logHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT log_date, calories, protein, carbs, fat
			FROM nutrition_log
			WHERE user_id = $1
			ORDER BY log_date DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2logs(rows)
}

// ListLogs returns log rows within [from, to], oldest first.
func (r *Repo) ListLogs(ctx context.Context, userID int, from, to calendar.Day) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.listLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT log_date, calories, protein, carbs, fat
			FROM nutrition_log
			WHERE user_id = $1 AND log_date >= $2 AND log_date <= $3
			ORDER BY log_date ASC;`,
		userID, from.Time(), to.Time(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2logs(rows)
}

// AllLogs returns the user's entire nutrition log, oldest first.
func (r *Repo) AllLogs(ctx context.Context, userID int) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.allLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT log_date, calories, protein, carbs, fat
			FROM nutrition_log
			WHERE user_id = $1
			ORDER BY log_date ASC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2logs(rows)
}

// CaloriesForDate reads the logged calories for the date, 0 when no log
// row exists.
func (r *Repo) CaloriesForDate(ctx context.Context, userID int, date calendar.Day) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.caloriesForDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var calories int
	err = r.db.QueryRow(
		ctx,
		`SELECT calories FROM nutrition_log WHERE user_id = $1 AND log_date = $2;`,
		userID, date.Time(),
	).Scan(&calories)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return calories, nil
}

// ActiveDiaryDates returns the dates within [from, to] on which the user
// logged at least one diary item.
func (r *Repo) ActiveDiaryDates(ctx context.Context, userID int, from, to calendar.Day) (_ map[calendar.Day]bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.activeDiaryDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT dd.log_date
			FROM diary_day dd
			JOIN diary_item di ON di.diary_day_id = dd.id
			WHERE dd.user_id = $1 AND dd.log_date >= $2 AND dd.log_date <= $3;`,
		userID, from.Time(), to.Time(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	active := map[calendar.Day]bool{}
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		active[calendar.DayOf(date)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return active, nil
}

// rows2items scans joined diary item rows. Unknown meal types are
// dropped unless keepUnknown is set (single item lookups should not
// silently vanish).
func rows2items(rows pgx.Rows, keepUnknown bool) ([]Item, error) {
	var items []Item
	for rows.Next() {
		var (
			item    Item
			date    time.Time
			foodID  *int
			grams   *float64
			name    *string
			brand   *string
			per100  [4]*float64
			qName   *string
			qMacros [4]*float64
		)
		if err := rows.Scan(
			&item.ID, &date, &item.MealType, &item.CreatedAt,
			&foodID, &grams,
			&name, &brand, &per100[0], &per100[1], &per100[2], &per100[3],
			&qName, &qMacros[0], &qMacros[1], &qMacros[2], &qMacros[3],
		); err != nil {
			return nil, err
		}

		if !keepUnknown && !item.MealType.IsValid() {
			continue
		}

		item.Date = calendar.DayOf(date)
		if foodID != nil {
			item.Food = &FoodEntry{
				FoodID: *foodID,
				Brand:  brand,
			}
			if name != nil {
				item.Food.Name = *name
			}
			if grams != nil {
				item.Food.Grams = *grams
			}
			item.Food.Per100g = macrosFromPtrs(per100)
		} else {
			item.Quick = &QuickEntry{
				Macros: macrosFromPtrs(qMacros),
			}
			if qName != nil {
				item.Quick.Name = *qName
			}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func macrosFromPtrs(vals [4]*float64) Macros {
	var m Macros
	if vals[0] != nil {
		m.Calories = *vals[0]
	}
	if vals[1] != nil {
		m.Protein = *vals[1]
	}
	if vals[2] != nil {
		m.Carbs = *vals[2]
	}
	if vals[3] != nil {
		m.Fat = *vals[3]
	}
	return m
}

func rows2logs(rows pgx.Rows) ([]Log, error) {
	var logs []Log
	for rows.Next() {
		var l Log
		var date time.Time
		if err := rows.Scan(&date, &l.Totals.Calories, &l.Totals.Protein, &l.Totals.Carbs, &l.Totals.Fat); err != nil {
			return nil, err
		}
		l.Date = calendar.DayOf(date)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}
