package models

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#6366f1"

// CategoryModel represents a blog category.
// Slug is assigned once at creation and never recomputed, even when the name changes.
type CategoryModel struct {
	Base
	Name        string `json:"name"         gorm:"uniqueIndex;not null"`
	Slug        string `json:"slug"         gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	Color       string `json:"color"        gorm:"default:'#6366f1'"`
	CategoryURL string `json:"category_url"`

	Blogs []BlogModel `json:"blogs,omitempty" gorm:"foreignKey:CategoryID"`
}

func (CategoryModel) TableName() string { return "categories" }
