// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuizAttemptsColumns holds the columns for the "quiz_attempts" table.
	QuizAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "category_id", Type: field.TypeString, Default: ""},
		{Name: "quiz_id", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: "normal"},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "score_percent", Type: field.TypeFloat64},
		{Name: "points", Type: field.TypeInt},
		{Name: "taken_at", Type: field.TypeTime},
	}
	// QuizAttemptsTable holds the schema information for the "quiz_attempts" table.
	QuizAttemptsTable = &schema.Table{
		Name:       "quiz_attempts",
		Columns:    QuizAttemptsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[1]},
			},
			{
				Name:    "quizattempt_category_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[2]},
			},
			{
				Name:    "quizattempt_user_id_taken_at",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[1], QuizAttemptsColumns[9]},
			},
		},
	}
	// StudyMaterialsColumns holds the columns for the "study_materials" table.
	StudyMaterialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "article_id", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "length", Type: field.TypeString, Default: "medium"},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudyMaterialsTable holds the schema information for the "study_materials" table.
	StudyMaterialsTable = &schema.Table{
		Name:       "study_materials",
		Columns:    StudyMaterialsColumns,
		PrimaryKey: []*schema.Column{StudyMaterialsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studymaterial_category",
				Unique:  false,
				Columns: []*schema.Column{StudyMaterialsColumns[2]},
			},
			{
				Name:    "studymaterial_created_at",
				Unique:  false,
				Columns: []*schema.Column{StudyMaterialsColumns[7]},
			},
		},
	}
	// UserStatsColumns holds the columns for the "user_stats" table.
	UserStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "quizzes_completed", Type: field.TypeInt, Default: 0},
		{Name: "average_score", Type: field.TypeFloat64, Default: 0},
		{Name: "total_points", Type: field.TypeInt, Default: 0},
		{Name: "rank", Type: field.TypeString, Default: "Novice"},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "last_quiz_date", Type: field.TypeTime, Nullable: true},
		{Name: "daily_quizzes", Type: field.TypeInt, Default: 0},
		{Name: "daily_date", Type: field.TypeTime, Nullable: true},
		{Name: "plan", Type: field.TypeString, Default: "free"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserStatsTable holds the schema information for the "user_stats" table.
	UserStatsTable = &schema.Table{
		Name:       "user_stats",
		Columns:    UserStatsColumns,
		PrimaryKey: []*schema.Column{UserStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userstats_total_points",
				Unique:  false,
				Columns: []*schema.Column{UserStatsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		QuizAttemptsTable,
		StudyMaterialsTable,
		UserStatsTable,
	}
)

func init() {
}
