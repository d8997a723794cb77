package study

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/solveuxq/solveuxq/internal/llm"
	"github.com/solveuxq/solveuxq/internal/store"
)

type fakeMaterials struct {
	saved []store.StudyMaterialData
}

func (f *fakeMaterials) Save(_ context.Context, data store.StudyMaterialData) error {
	f.saved = append(f.saved, data)
	return nil
}

func (f *fakeMaterials) Categories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, m := range f.saved {
		if !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	return out, nil
}

func (f *fakeMaterials) ByCategory(_ context.Context, category string) ([]store.StudyMaterialRecord, error) {
	var out []store.StudyMaterialRecord
	for i, m := range f.saved {
		if m.Category == category {
			out = append(out, store.StudyMaterialRecord{ID: i + 1, StudyMaterialData: m})
		}
	}
	return out, nil
}

func (f *fakeMaterials) Get(_ context.Context, articleID string) (*store.StudyMaterialRecord, error) {
	for i, m := range f.saved {
		if m.ArticleID == articleID {
			return &store.StudyMaterialRecord{ID: i + 1, StudyMaterialData: m}, nil
		}
	}
	return nil, nil
}

const articleMarkdown = "# Usability Heuristics\n\nAn introduction...\n\n## Core Concepts\n..."

func TestService_Generate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(articleMarkdown)},
	)
	svc := NewService(mock, &fakeMaterials{}, 0)

	a, err := svc.Generate(context.Background(), GenerateInput{
		Category: "UI/UX Design",
		Topic:    "usability heuristics",
		Length:   LengthShort,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == "" {
		t.Fatal("expected article ID")
	}
	if a.Title != "Usability heuristics - UI/UX Design Guide" {
		t.Fatalf("unexpected title: %q", a.Title)
	}
	if a.Content != articleMarkdown {
		t.Fatalf("unexpected content: %q", a.Content)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "300-500 words") {
		t.Errorf("prompt missing short word range: %q", prompt)
	}
	if !strings.Contains(prompt, "usability heuristics") {
		t.Errorf("prompt missing topic")
	}
}

func TestService_GenerateTitleMultibyteTopic(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(articleMarkdown)},
	)
	svc := NewService(mock, &fakeMaterials{}, 0)

	a, err := svc.Generate(context.Background(), GenerateInput{
		Category: "UX Research",
		Topic:    "études diaries",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !utf8.ValidString(a.Title) {
		t.Fatalf("title is not valid UTF-8: %q", a.Title)
	}
	if a.Title != "Études diaries - UX Research Guide" {
		t.Fatalf("unexpected title: %q", a.Title)
	}
}

func TestService_GenerateRequiresInput(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), &fakeMaterials{}, 0)

	if _, err := svc.Generate(context.Background(), GenerateInput{Category: "UX"}); err == nil {
		t.Fatal("expected error for missing topic")
	}
	if _, err := svc.Generate(context.Background(), GenerateInput{Topic: "color"}); err == nil {
		t.Fatal("expected error for missing category")
	}
}

func TestService_SaveAndLibrary(t *testing.T) {
	materials := &fakeMaterials{}
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(articleMarkdown)},
	)
	svc := NewService(mock, materials, 0)
	ctx := context.Background()

	a, err := svc.Generate(ctx, GenerateInput{Category: "UX Research", Topic: "interviews"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := svc.Save(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}

	categories, err := svc.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 1 || categories[0] != "UX Research" {
		t.Fatalf("unexpected categories: %v", categories)
	}

	articles, err := svc.ByCategory(ctx, "UX Research")
	if err != nil {
		t.Fatalf("by category: %v", err)
	}
	if len(articles) != 1 || articles[0].ID != a.ID {
		t.Fatalf("unexpected articles: %+v", articles)
	}

	got, err := svc.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Content != articleMarkdown {
		t.Fatalf("unexpected article: %+v", got)
	}

	missing, err := svc.Get(ctx, "absent")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing article")
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want Length
	}{
		{"short", LengthShort},
		{"medium", LengthMedium},
		{"long", LengthLong},
		{"epic", LengthMedium},
		{"", LengthMedium},
	}
	for _, tt := range tests {
		if got := ParseLength(tt.in); got != tt.want {
			t.Errorf("ParseLength(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
