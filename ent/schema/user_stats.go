package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserStats is the per-user aggregate row. Created lazily on first read
// or write; point increments go through raw SQL for atomicity.
type UserStats struct {
	ent.Schema
}

func (UserStats) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty(),
		field.Int("quizzes_completed").
			Default(0).
			NonNegative(),
		field.Float("average_score").
			Default(0).
			Comment("Running average of score percentages"),
		field.Int("total_points").
			Default(0).
			NonNegative(),
		field.String("rank").
			Default("Novice").
			Comment("Display rank derived from total points"),
		field.Int("streak").
			Default(0).
			NonNegative().
			Comment("Consecutive days with at least one completed quiz"),
		field.Time("last_quiz_date").
			Optional().
			Comment("Date of the most recent completed quiz"),
		field.Int("daily_quizzes").
			Default(0).
			NonNegative().
			Comment("Quizzes generated today, for the daily limit"),
		field.Time("daily_date").
			Optional().
			Comment("Day the daily counter belongs to"),
		field.String("plan").
			Default("free").
			Comment("Subscription plan: free or paid"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (UserStats) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("total_points"),
	}
}
