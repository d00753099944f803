package blog

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/awqat-travel/core/internal/models"
	"github.com/awqat-travel/core/internal/pkg/apperrors"
	"github.com/awqat-travel/core/internal/pkg/pagination"
	"github.com/awqat-travel/core/internal/pkg/response"
	"github.com/awqat-travel/core/internal/pkg/slugify"
	"gorm.io/gorm"
)

const (
	excerptMaxChars    = 200
	readingWordsPerMin = 200
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ListPublished returns publicly visible articles, newest first.
func (s *Service) ListPublished(q pagination.Query) ([]models.BlogModel, response.Pagination, error) {
	var blogs []models.BlogModel
	query := s.db.Model(&models.BlogModel{}).
		Preload("Category").
		Where("status = ?", models.StatusPublished).
		Order("created_at DESC")
	page, err := pagination.Paginate(query, q, &blogs)
	return blogs, page, err
}

// GetPublishedBySlug returns a published article or a NotFound error; a draft
// behind the slug is indistinguishable from a missing one.
func (s *Service) GetPublishedBySlug(slug string) (*models.BlogModel, error) {
	var b models.BlogModel
	err := s.db.Preload("Category").
		Where("slug = ? AND status = ?", slug, models.StatusPublished).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("المقال غير موجود")
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListAll returns every article for the admin list, newest first.
func (s *Service) ListAll(q pagination.Query) ([]models.BlogModel, response.Pagination, error) {
	var blogs []models.BlogModel
	query := s.db.Model(&models.BlogModel{}).
		Preload("Category").
		Order("created_at DESC")
	page, err := pagination.Paginate(query, q, &blogs)
	return blogs, page, err
}

func (s *Service) GetByID(id string) (*models.BlogModel, error) {
	var b models.BlogModel
	if err := s.db.Preload("Category").First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// Create validates and persists a new article. The slug is derived from the
// title here and never again; uniqueness is the database's constraint.
func (s *Service) Create(dto *SaveBlogDTO, authorID string) (*models.BlogModel, error) {
	if err := validateDraft(dto); err != nil {
		return nil, err
	}

	b := models.BlogModel{
		Title:         dto.Title,
		Content:       dto.Content,
		FeaturedImage: dto.FeaturedImage,
		Slug:          slugify.Make(dto.Title),
		Status:        normalizeStatus(dto.Status),
		AuthorID:      authorID,
		Tags:          SplitTags(dto.Tags),
		ArticleURL:    dto.ArticleURL,
	}
	applyDerivedFields(&b, dto)
	if dto.CategoryID != "" {
		b.CategoryID = &dto.CategoryID
	}
	if b.Status == models.StatusPublished {
		now := time.Now()
		b.PublishedAt = &now
	}

	return &b, s.db.Create(&b).Error
}

// Update saves an existing article. The stored slug is preserved regardless
// of title changes. Saving while published stamps published_at; reverting to
// draft leaves the old timestamp in place.
func (s *Service) Update(id string, dto *SaveBlogDTO) (*models.BlogModel, error) {
	if err := validateDraft(dto); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("المقال غير موجود")
	}

	b := *existing
	b.Title = dto.Title
	b.Content = dto.Content
	b.FeaturedImage = dto.FeaturedImage
	b.Status = normalizeStatus(dto.Status)
	b.Tags = SplitTags(dto.Tags)
	b.ArticleURL = dto.ArticleURL
	applyDerivedFields(&b, dto)
	if dto.CategoryID != "" {
		b.CategoryID = &dto.CategoryID
	} else {
		b.CategoryID = nil
	}
	if b.Status == models.StatusPublished {
		now := time.Now()
		b.PublishedAt = &now
	}
	b.Category = nil

	return &b, s.db.Model(&models.BlogModel{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":            b.Title,
			"content":          b.Content,
			"excerpt":          b.Excerpt,
			"featured_image":   b.FeaturedImage,
			"status":           b.Status,
			"category_id":      b.CategoryID,
			"tags":             b.Tags,
			"meta_title":       b.MetaTitle,
			"meta_description": b.MetaDescription,
			"reading_time":     b.ReadingTime,
			"article_url":      b.ArticleURL,
			"published_at":     b.PublishedAt,
		}).Error
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.BlogModel{}, "id = ?", id).Error
}

func validateDraft(dto *SaveBlogDTO) error {
	if strings.TrimSpace(dto.Title) == "" || strings.TrimSpace(dto.Content) == "" {
		return apperrors.Validation("العنوان والمحتوى مطلوبان")
	}
	return nil
}

// applyDerivedFields fills excerpt, meta fields, and reading time. Defaults
// only apply to fields that are blank at save time: a later save carrying the
// previously persisted value leaves it untouched, which keeps re-saving
// idempotent.
func applyDerivedFields(b *models.BlogModel, dto *SaveBlogDTO) {
	b.Excerpt = dto.Excerpt
	if b.Excerpt == "" {
		b.Excerpt = DeriveExcerpt(dto.Content)
	}
	b.MetaTitle = dto.MetaTitle
	if b.MetaTitle == "" {
		b.MetaTitle = dto.Title
	}
	b.MetaDescription = dto.MetaDescription
	if b.MetaDescription == "" {
		b.MetaDescription = b.Excerpt
	}
	b.ReadingTime = EstimateReadingTime(dto.Content)
}

func normalizeStatus(status string) string {
	if status == models.StatusPublished {
		return models.StatusPublished
	}
	return models.StatusDraft
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes HTML tags, leaving plain text.
func StripTags(html string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(html, ""))
}

// DeriveExcerpt takes the first 200 characters of tag-stripped content,
// appending an ellipsis when it was truncated.
func DeriveExcerpt(content string) string {
	text := StripTags(content)
	runes := []rune(text)
	if len(runes) <= excerptMaxChars {
		return text
	}
	return string(runes[:excerptMaxChars]) + "..."
}

// EstimateReadingTime returns whole minutes at 200 words per minute, at
// least 1 for non-empty content.
func EstimateReadingTime(content string) int {
	words := len(strings.Fields(StripTags(content)))
	if words == 0 {
		return 0
	}
	minutes := (words + readingWordsPerMin - 1) / readingWordsPerMin
	return minutes
}

// SplitTags turns the editor's comma-separated string into a clean list.
func SplitTags(raw string) models.StringArray {
	if strings.TrimSpace(raw) == "" {
		return models.StringArray{}
	}
	parts := strings.Split(raw, ",")
	out := make(models.StringArray, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinTags is the inverse of SplitTags, used when loading an article into
// the editor.
func JoinTags(tags models.StringArray) string {
	return strings.Join(tags, ", ")
}
