// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/solveuxq/solveuxq/ent/llmrequestevent"
	"github.com/solveuxq/solveuxq/ent/quizattempt"
	"github.com/solveuxq/solveuxq/ent/schema"
	"github.com/solveuxq/solveuxq/ent/studymaterial"
	"github.com/solveuxq/solveuxq/ent/userstats"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescUserID is the schema descriptor for user_id field.
	quizattemptDescUserID := quizattemptFields[0].Descriptor()
	// quizattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizattempt.UserIDValidator = quizattemptDescUserID.Validators[0].(func(string) error)
	// quizattemptDescCategoryID is the schema descriptor for category_id field.
	quizattemptDescCategoryID := quizattemptFields[1].Descriptor()
	// quizattempt.DefaultCategoryID holds the default value on creation for the category_id field.
	quizattempt.DefaultCategoryID = quizattemptDescCategoryID.Default.(string)
	// quizattemptDescQuizID is the schema descriptor for quiz_id field.
	quizattemptDescQuizID := quizattemptFields[2].Descriptor()
	// quizattempt.DefaultQuizID holds the default value on creation for the quiz_id field.
	quizattempt.DefaultQuizID = quizattemptDescQuizID.Default.(string)
	// quizattemptDescDifficulty is the schema descriptor for difficulty field.
	quizattemptDescDifficulty := quizattemptFields[3].Descriptor()
	// quizattempt.DefaultDifficulty holds the default value on creation for the difficulty field.
	quizattempt.DefaultDifficulty = quizattemptDescDifficulty.Default.(string)
	// quizattemptDescCorrectCount is the schema descriptor for correct_count field.
	quizattemptDescCorrectCount := quizattemptFields[4].Descriptor()
	// quizattempt.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	quizattempt.CorrectCountValidator = quizattemptDescCorrectCount.Validators[0].(func(int) error)
	// quizattemptDescTotalQuestions is the schema descriptor for total_questions field.
	quizattemptDescTotalQuestions := quizattemptFields[5].Descriptor()
	// quizattempt.TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	quizattempt.TotalQuestionsValidator = quizattemptDescTotalQuestions.Validators[0].(func(int) error)
	// quizattemptDescPoints is the schema descriptor for points field.
	quizattemptDescPoints := quizattemptFields[7].Descriptor()
	// quizattempt.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	quizattempt.PointsValidator = quizattemptDescPoints.Validators[0].(func(int) error)
	// quizattemptDescTakenAt is the schema descriptor for taken_at field.
	quizattemptDescTakenAt := quizattemptFields[8].Descriptor()
	// quizattempt.DefaultTakenAt holds the default value on creation for the taken_at field.
	quizattempt.DefaultTakenAt = quizattemptDescTakenAt.Default.(func() time.Time)
	studymaterialFields := schema.StudyMaterial{}.Fields()
	_ = studymaterialFields
	// studymaterialDescArticleID is the schema descriptor for article_id field.
	studymaterialDescArticleID := studymaterialFields[0].Descriptor()
	// studymaterial.ArticleIDValidator is a validator for the "article_id" field. It is called by the builders before save.
	studymaterial.ArticleIDValidator = studymaterialDescArticleID.Validators[0].(func(string) error)
	// studymaterialDescCategory is the schema descriptor for category field.
	studymaterialDescCategory := studymaterialFields[1].Descriptor()
	// studymaterial.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	studymaterial.CategoryValidator = studymaterialDescCategory.Validators[0].(func(string) error)
	// studymaterialDescTitle is the schema descriptor for title field.
	studymaterialDescTitle := studymaterialFields[2].Descriptor()
	// studymaterial.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	studymaterial.TitleValidator = studymaterialDescTitle.Validators[0].(func(string) error)
	// studymaterialDescContent is the schema descriptor for content field.
	studymaterialDescContent := studymaterialFields[3].Descriptor()
	// studymaterial.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	studymaterial.ContentValidator = studymaterialDescContent.Validators[0].(func(string) error)
	// studymaterialDescLength is the schema descriptor for length field.
	studymaterialDescLength := studymaterialFields[4].Descriptor()
	// studymaterial.DefaultLength holds the default value on creation for the length field.
	studymaterial.DefaultLength = studymaterialDescLength.Default.(string)
	// studymaterialDescModel is the schema descriptor for model field.
	studymaterialDescModel := studymaterialFields[5].Descriptor()
	// studymaterial.DefaultModel holds the default value on creation for the model field.
	studymaterial.DefaultModel = studymaterialDescModel.Default.(string)
	// studymaterialDescCreatedAt is the schema descriptor for created_at field.
	studymaterialDescCreatedAt := studymaterialFields[6].Descriptor()
	// studymaterial.DefaultCreatedAt holds the default value on creation for the created_at field.
	studymaterial.DefaultCreatedAt = studymaterialDescCreatedAt.Default.(func() time.Time)
	userstatsFields := schema.UserStats{}.Fields()
	_ = userstatsFields
	// userstatsDescUserID is the schema descriptor for user_id field.
	userstatsDescUserID := userstatsFields[0].Descriptor()
	// userstats.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userstats.UserIDValidator = userstatsDescUserID.Validators[0].(func(string) error)
	// userstatsDescQuizzesCompleted is the schema descriptor for quizzes_completed field.
	userstatsDescQuizzesCompleted := userstatsFields[1].Descriptor()
	// userstats.DefaultQuizzesCompleted holds the default value on creation for the quizzes_completed field.
	userstats.DefaultQuizzesCompleted = userstatsDescQuizzesCompleted.Default.(int)
	// userstats.QuizzesCompletedValidator is a validator for the "quizzes_completed" field. It is called by the builders before save.
	userstats.QuizzesCompletedValidator = userstatsDescQuizzesCompleted.Validators[0].(func(int) error)
	// userstatsDescAverageScore is the schema descriptor for average_score field.
	userstatsDescAverageScore := userstatsFields[2].Descriptor()
	// userstats.DefaultAverageScore holds the default value on creation for the average_score field.
	userstats.DefaultAverageScore = userstatsDescAverageScore.Default.(float64)
	// userstatsDescTotalPoints is the schema descriptor for total_points field.
	userstatsDescTotalPoints := userstatsFields[3].Descriptor()
	// userstats.DefaultTotalPoints holds the default value on creation for the total_points field.
	userstats.DefaultTotalPoints = userstatsDescTotalPoints.Default.(int)
	// userstats.TotalPointsValidator is a validator for the "total_points" field. It is called by the builders before save.
	userstats.TotalPointsValidator = userstatsDescTotalPoints.Validators[0].(func(int) error)
	// userstatsDescRank is the schema descriptor for rank field.
	userstatsDescRank := userstatsFields[4].Descriptor()
	// userstats.DefaultRank holds the default value on creation for the rank field.
	userstats.DefaultRank = userstatsDescRank.Default.(string)
	// userstatsDescStreak is the schema descriptor for streak field.
	userstatsDescStreak := userstatsFields[5].Descriptor()
	// userstats.DefaultStreak holds the default value on creation for the streak field.
	userstats.DefaultStreak = userstatsDescStreak.Default.(int)
	// userstats.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	userstats.StreakValidator = userstatsDescStreak.Validators[0].(func(int) error)
	// userstatsDescDailyQuizzes is the schema descriptor for daily_quizzes field.
	userstatsDescDailyQuizzes := userstatsFields[7].Descriptor()
	// userstats.DefaultDailyQuizzes holds the default value on creation for the daily_quizzes field.
	userstats.DefaultDailyQuizzes = userstatsDescDailyQuizzes.Default.(int)
	// userstats.DailyQuizzesValidator is a validator for the "daily_quizzes" field. It is called by the builders before save.
	userstats.DailyQuizzesValidator = userstatsDescDailyQuizzes.Validators[0].(func(int) error)
	// userstatsDescPlan is the schema descriptor for plan field.
	userstatsDescPlan := userstatsFields[9].Descriptor()
	// userstats.DefaultPlan holds the default value on creation for the plan field.
	userstats.DefaultPlan = userstatsDescPlan.Default.(string)
	// userstatsDescCreatedAt is the schema descriptor for created_at field.
	userstatsDescCreatedAt := userstatsFields[10].Descriptor()
	// userstats.DefaultCreatedAt holds the default value on creation for the created_at field.
	userstats.DefaultCreatedAt = userstatsDescCreatedAt.Default.(func() time.Time)
	// userstatsDescUpdatedAt is the schema descriptor for updated_at field.
	userstatsDescUpdatedAt := userstatsFields[11].Descriptor()
	// userstats.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userstats.DefaultUpdatedAt = userstatsDescUpdatedAt.Default.(func() time.Time)
	// userstats.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userstats.UpdateDefaultUpdatedAt = userstatsDescUpdatedAt.UpdateDefault.(func() time.Time)
}
