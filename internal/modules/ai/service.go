package ai

import (
	"context"
	"strings"

	"github.com/awqat-travel/core/internal/pkg/apperrors"
	"go.uber.org/zap"
)

type Service struct {
	provider Provider
	logger   *zap.Logger
}

func NewService(provider Provider, logger *zap.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Generate runs one completion for the given request type. The prompt is the
// user's instruction; the type picks the system prompt and parameters. A blank
// prompt or a missing provider fails before any upstream call is made.
func (s *Service) Generate(ctx context.Context, prompt, requestType string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apperrors.Precondition("النص المطلوب مفقود")
	}
	if s.provider == nil {
		return "", apperrors.Precondition("خدمة الذكاء الاصطناعي غير مفعلة")
	}

	profile := profileFor(requestType)
	out, err := s.provider.Complete(ctx, profile.System, prompt, profile)
	if err != nil {
		s.logger.Warn("ai generation failed",
			zap.String("type", requestType),
			zap.Error(err))
		return "", apperrors.Remote("فشل توليد المحتوى", err)
	}
	return out, nil
}

// GenerateContent drafts a full article body for the given title or topic.
func (s *Service) GenerateContent(ctx context.Context, topic string) (string, error) {
	return s.Generate(ctx, topic, TypeBlog)
}

// GenerateTitle suggests one article title. Models sometimes wrap the answer
// in quotes or pad it with blank lines; only the first cleaned line is kept.
func (s *Service) GenerateTitle(ctx context.Context, topic string) (string, error) {
	out, err := s.Generate(ctx, topic, TypeTitle)
	if err != nil {
		return "", err
	}
	return CleanTitle(out), nil
}

// SEOResult holds the generated metadata pair.
type SEOResult struct {
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
}

// GenerateSEO produces a meta title and description for an article title.
// The model is asked for two lines; missing lines fall back to the input.
func (s *Service) GenerateSEO(ctx context.Context, title string) (*SEOResult, error) {
	out, err := s.Generate(ctx, title, TypeSEO)
	if err != nil {
		return nil, err
	}

	result := ParseSEOResponse(out)
	if result.MetaTitle == "" {
		result.MetaTitle = strings.TrimSpace(title)
	}
	return &result, nil
}

// CleanTitle reduces a model response to a single unquoted title line.
func CleanTitle(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, `"'«»`)
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

// ParseSEOResponse splits the two-line SEO answer into its fields.
func ParseSEOResponse(raw string) SEOResult {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	var result SEOResult
	if len(lines) > 0 {
		result.MetaTitle = lines[0]
	}
	if len(lines) > 1 {
		result.MetaDescription = strings.Join(lines[1:], " ")
	}
	return result
}
