package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttempt is one finished, graded quiz. Attempts are append-only;
// history and category progress are derived from them.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Owner of the attempt"),
		field.String("category_id").
			Default("").
			Comment("Category the quiz was generated for"),
		field.String("quiz_id").
			Default("").
			Comment("Generated quiz identifier"),
		field.String("difficulty").
			Default("normal").
			Comment("Difficulty preset: easy, normal, hard"),
		field.Int("correct_count").
			NonNegative(),
		field.Int("total_questions").
			Positive(),
		field.Float("score_percent").
			Comment("Correct over total, in percent"),
		field.Int("points").
			NonNegative().
			Comment("Points awarded including bonus"),
		field.Time("taken_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("category_id"),
		index.Fields("user_id", "taken_at"),
	}
}
