package store

import (
	"context"
	"fmt"

	"github.com/solveuxq/solveuxq/ent"
	"github.com/solveuxq/solveuxq/ent/studymaterial"
)

// materialRepo implements MaterialRepo backed by ent.
type materialRepo struct {
	client *ent.Client
}

func (r *materialRepo) Save(ctx context.Context, data StudyMaterialData) error {
	_, err := r.client.StudyMaterial.Create().
		SetArticleID(data.ArticleID).
		SetCategory(data.Category).
		SetTitle(data.Title).
		SetContent(data.Content).
		SetLength(data.Length).
		SetModel(data.Model).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save study material: %w", err)
	}
	return nil
}

func (r *materialRepo) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.client.StudyMaterial.Query().
		Unique(true).
		Select(studymaterial.FieldCategory).
		Scan(ctx, &categories)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	return categories, nil
}

func (r *materialRepo) ByCategory(ctx context.Context, category string) ([]StudyMaterialRecord, error) {
	rows, err := r.client.StudyMaterial.Query().
		Where(studymaterial.Category(category)).
		Order(ent.Desc(studymaterial.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query study materials: %w", err)
	}

	records := make([]StudyMaterialRecord, len(rows))
	for i, m := range rows {
		records[i] = materialRecord(m)
	}
	return records, nil
}

func (r *materialRepo) Get(ctx context.Context, articleID string) (*StudyMaterialRecord, error) {
	m, err := r.client.StudyMaterial.Query().
		Where(studymaterial.ArticleID(articleID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get study material: %w", err)
	}
	rec := materialRecord(m)
	return &rec, nil
}

func materialRecord(m *ent.StudyMaterial) StudyMaterialRecord {
	return StudyMaterialRecord{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		StudyMaterialData: StudyMaterialData{
			ArticleID: m.ArticleID,
			Category:  m.Category,
			Title:     m.Title,
			Content:   m.Content,
			Length:    m.Length,
			Model:     m.Model,
		},
	}
}
