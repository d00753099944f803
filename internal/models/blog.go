package models

import "time"

// Blog status values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// BlogModel is a blog article.
// Slug is derived from the title once at creation and preserved on every
// later update. PublishedAt is stamped when the article is saved while
// published and is never cleared on reverting to draft.
type BlogModel struct {
	Base
	Title           string         `json:"title"            gorm:"not null"`
	Content         string         `json:"content"          gorm:"type:longtext"`
	Excerpt         string         `json:"excerpt"`
	FeaturedImage   string         `json:"featured_image"`
	Slug            string         `json:"slug"             gorm:"uniqueIndex;not null"`
	Status          string         `json:"status"           gorm:"default:'draft';index"`
	AuthorID        string         `json:"author_id"        gorm:"index"`
	CategoryID      *string        `json:"category_id"      gorm:"index"`
	Category        *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags            StringArray    `json:"tags"             gorm:"type:json"`
	MetaTitle       string         `json:"meta_title"`
	MetaDescription string         `json:"meta_description"`
	ReadingTime     int            `json:"reading_time"     gorm:"default:0"`
	ArticleURL      string         `json:"article_url"`
	PublishedAt     *time.Time     `json:"published_at"`
}

func (BlogModel) TableName() string { return "blogs" }

// IsPublished reports whether the article is publicly visible.
func (b BlogModel) IsPublished() bool { return b.Status == StatusPublished }
