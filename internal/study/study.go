// Package study generates and stores markdown study articles. Unlike quiz
// generation the output is prose, so the raw model text is saved as-is
// with no JSON recovery step.
package study

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/solveuxq/solveuxq/internal/llm"
	"github.com/solveuxq/solveuxq/internal/store"
)

// Length is an article length preset.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// wordRange returns the word count range sent to the prompt.
func (l Length) wordRange() string {
	switch l {
	case LengthShort:
		return "300-500"
	case LengthLong:
		return "1500-2500"
	default:
		return "800-1200"
	}
}

// ParseLength maps a user-supplied label to a preset, defaulting to medium.
func ParseLength(s string) Length {
	switch s {
	case "short":
		return LengthShort
	case "long":
		return LengthLong
	default:
		return LengthMedium
	}
}

// GenerateInput describes the article to generate.
type GenerateInput struct {
	Category string
	Topic    string
	Length   Length
}

// Article is a generated study article, saved or not.
type Article struct {
	ID        string
	Category  string
	Title     string
	Content   string
	Length    Length
	Model     string
	CreatedAt time.Time
}

// Service generates articles and manages the saved library.
type Service struct {
	provider  llm.Provider
	materials store.MaterialRepo
	timeout   time.Duration
	maxTokens int
}

// NewService creates a study service. A zero timeout falls back to 45s.
func NewService(provider llm.Provider, materials store.MaterialRepo, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &Service{
		provider:  provider,
		materials: materials,
		timeout:   timeout,
		maxTokens: 3000,
	}
}

// Generate produces a markdown article. The result is not saved; call
// Save to keep it.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Article, error) {
	if input.Category == "" || input.Topic == "" {
		return nil, fmt.Errorf("category and topic are required")
	}
	if input.Length == "" {
		input.Length = LengthMedium
	}

	ctx = llm.WithPurpose(ctx, "study_material")
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(input)},
		},
		MaxTokens:   s.maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	content := strings.TrimSpace(resp.Text())
	if content == "" {
		return nil, &llm.ErrMalformedResponse{Detail: "empty study material content"}
	}

	return &Article{
		ID:        uuid.NewString(),
		Category:  input.Category,
		Title:     buildTitle(input),
		Content:   content,
		Length:    input.Length,
		Model:     resp.Model,
		CreatedAt: time.Now(),
	}, nil
}

// Save stores a generated article in the library.
func (s *Service) Save(ctx context.Context, a *Article) error {
	return s.materials.Save(ctx, store.StudyMaterialData{
		ArticleID: a.ID,
		Category:  a.Category,
		Title:     a.Title,
		Content:   a.Content,
		Length:    string(a.Length),
		Model:     a.Model,
	})
}

// Categories lists the categories with saved articles.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.materials.Categories(ctx)
}

// ByCategory lists saved articles in a category, newest first.
func (s *Service) ByCategory(ctx context.Context, category string) ([]Article, error) {
	records, err := s.materials.ByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	articles := make([]Article, len(records))
	for i, r := range records {
		articles[i] = articleFromRecord(r)
	}
	return articles, nil
}

// Get returns a saved article by ID, or nil when absent.
func (s *Service) Get(ctx context.Context, articleID string) (*Article, error) {
	record, err := s.materials.Get(ctx, articleID)
	if err != nil || record == nil {
		return nil, err
	}
	a := articleFromRecord(*record)
	return &a, nil
}

func buildPrompt(input GenerateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate an educational study material about %s in the field of %s.\n", input.Topic, input.Category)
	b.WriteString("Focus on providing practical insights, examples, and best practices.\n")
	fmt.Fprintf(&b, "The content should be between %s words, well-structured with clear headings and paragraphs.\n", input.Length.wordRange())
	b.WriteString(`Format the content in Markdown.
Make sure to include:
- An engaging introduction
- Core concepts explained clearly
- Practical examples or case studies
- Best practices and tips
- A brief summary or conclusion`)
	return b.String()
}

func buildTitle(input GenerateInput) string {
	topic := input.Topic
	if r, size := utf8.DecodeRuneInString(topic); size > 0 && r != utf8.RuneError {
		topic = string(unicode.ToUpper(r)) + topic[size:]
	}
	return fmt.Sprintf("%s - %s Guide", topic, input.Category)
}

func articleFromRecord(r store.StudyMaterialRecord) Article {
	return Article{
		ID:        r.ArticleID,
		Category:  r.Category,
		Title:     r.Title,
		Content:   r.Content,
		Length:    Length(r.Length),
		Model:     r.Model,
		CreatedAt: r.CreatedAt,
	}
}
