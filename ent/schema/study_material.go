package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyMaterial is a generated markdown article saved for later reading.
type StudyMaterial struct {
	ent.Schema
}

func (StudyMaterial) Fields() []ent.Field {
	return []ent.Field{
		field.String("article_id").
			Unique().
			NotEmpty().
			Comment("UUID assigned at generation time"),
		field.String("category").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.Text("content").
			NotEmpty().
			Comment("Markdown body"),
		field.String("length").
			Default("medium").
			Comment("Length preset: short, medium, long"),
		field.String("model").
			Default("").
			Comment("Model that generated the article"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (StudyMaterial) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("created_at"),
	}
}
