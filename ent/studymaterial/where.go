// Code generated by ent, DO NOT EDIT.

package studymaterial

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/solveuxq/solveuxq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLTE(FieldID, id))
}

// ArticleID applies equality check predicate on the "article_id" field. It's identical to ArticleIDEQ.
func ArticleID(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldArticleID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldCategory, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldTitle, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldContent, v))
}

// Length applies equality check predicate on the "length" field. It's identical to LengthEQ.
func Length(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldLength, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldModel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldCreatedAt, v))
}

// ArticleIDEQ applies the EQ predicate on the "article_id" field.
func ArticleIDEQ(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldArticleID, v))
}

// ArticleIDNEQ applies the NEQ predicate on the "article_id" field.
func ArticleIDNEQ(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNEQ(FieldArticleID, v))
}

// ArticleIDIn applies the In predicate on the "article_id" field.
func ArticleIDIn(vs ...string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldIn(FieldArticleID, vs...))
}

// ArticleIDNotIn applies the NotIn predicate on the "article_id" field.
func ArticleIDNotIn(vs ...string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNotIn(FieldArticleID, vs...))
}

// ArticleIDGT applies the GT predicate on the "article_id" field.
func ArticleIDGT(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGT(FieldArticleID, v))
}

// ArticleIDGTE applies the GTE predicate on the "article_id" field.
func ArticleIDGTE(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGTE(FieldArticleID, v))
}

// ArticleIDLT applies the LT predicate on the "article_id" field.
func ArticleIDLT(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLT(FieldArticleID, v))
}

// ArticleIDLTE applies the LTE predicate on the "article_id" field.
func ArticleIDLTE(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLTE(FieldArticleID, v))
}

// ArticleIDContains applies the Contains predicate on the "article_id" field.
func ArticleIDContains(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldContains(FieldArticleID, v))
}

// ArticleIDHasPrefix applies the HasPrefix predicate on the "article_id" field.
func ArticleIDHasPrefix(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldHasPrefix(FieldArticleID, v))
}

// ArticleIDHasSuffix applies the HasSuffix predicate on the "article_id" field.
func ArticleIDHasSuffix(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldHasSuffix(FieldArticleID, v))
}

// ArticleIDEqualFold applies the EqualFold predicate on the "article_id" field.
func ArticleIDEqualFold(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEqualFold(FieldArticleID, v))
}

// ArticleIDContainsFold applies the ContainsFold predicate on the "article_id" field.
func ArticleIDContainsFold(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldContainsFold(FieldArticleID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldContainsFold(FieldCategory, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldContainsFold(FieldTitle, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldContainsFold(FieldContent, v))
}

// LengthEQ applies the EQ predicate on the "length" field.
func LengthEQ(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldLength, v))
}

// LengthNEQ applies the NEQ predicate on the "length" field.
func LengthNEQ(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNEQ(FieldLength, v))
}

// LengthIn applies the In predicate on the "length" field.
func LengthIn(vs ...string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldIn(FieldLength, vs...))
}

// LengthNotIn applies the NotIn predicate on the "length" field.
func LengthNotIn(vs ...string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNotIn(FieldLength, vs...))
}

// LengthGT applies the GT predicate on the "length" field.
func LengthGT(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGT(FieldLength, v))
}

// LengthGTE applies the GTE predicate on the "length" field.
func LengthGTE(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGTE(FieldLength, v))
}

// LengthLT applies the LT predicate on the "length" field.
func LengthLT(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLT(FieldLength, v))
}

// LengthLTE applies the LTE predicate on the "length" field.
func LengthLTE(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLTE(FieldLength, v))
}

// LengthContains applies the Contains predicate on the "length" field.
func LengthContains(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldContains(FieldLength, v))
}

// LengthHasPrefix applies the HasPrefix predicate on the "length" field.
func LengthHasPrefix(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldHasPrefix(FieldLength, v))
}

// LengthHasSuffix applies the HasSuffix predicate on the "length" field.
func LengthHasSuffix(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldHasSuffix(FieldLength, v))
}

// LengthEqualFold applies the EqualFold predicate on the "length" field.
func LengthEqualFold(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEqualFold(FieldLength, v))
}

// LengthContainsFold applies the ContainsFold predicate on the "length" field.
func LengthContainsFold(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldContainsFold(FieldLength, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldContainsFold(FieldModel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudyMaterial) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudyMaterial) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudyMaterial) predicate.StudyMaterial {
	return predicate.StudyMaterial(sql.NotPredicates(p))
}
