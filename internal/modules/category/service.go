package category

import (
	"errors"

	"github.com/awqat-travel/core/internal/models"
	"github.com/awqat-travel/core/internal/pkg/apperrors"
	"github.com/awqat-travel/core/internal/pkg/slugify"
	"gorm.io/gorm"
)

type CreateCategoryDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	CategoryURL string `json:"category_url"`
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	CategoryURL *string `json:"category_url"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List() ([]models.CategoryModel, error) {
	var cats []models.CategoryModel
	return cats, s.db.Order("created_at ASC").Find(&cats).Error
}

func (s *Service) GetByID(id string) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Service) GetByQuery(query string) (*models.CategoryModel, error) {
	if cat, err := s.GetByID(query); err != nil {
		return nil, err
	} else if cat != nil {
		return cat, nil
	}

	var cat models.CategoryModel
	if err := s.db.Where("slug = ? OR name = ?", query, query).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

// Create derives the slug from the name once; it is never recomputed later.
func (s *Service) Create(dto *CreateCategoryDTO) (*models.CategoryModel, error) {
	if dto.Name == "" {
		return nil, apperrors.Validation("اسم الفئة مطلوب")
	}

	slug := slugify.Make(dto.Name)
	var count int64
	s.db.Model(&models.CategoryModel{}).Where("slug = ? OR name = ?", slug, dto.Name).Count(&count)
	if count > 0 {
		return nil, apperrors.Validation("الفئة موجودة مسبقاً")
	}

	cat := models.CategoryModel{
		Name:        dto.Name,
		Slug:        slug,
		Description: dto.Description,
		Color:       dto.Color,
		CategoryURL: dto.CategoryURL,
	}
	if cat.Color == "" {
		cat.Color = models.DefaultCategoryColor
	}
	return &cat, s.db.Create(&cat).Error
}

// Update changes everything except the slug, which keeps its creation value
// even when the name changes. The category is addressed by ID, slug, or name,
// the same way reads are.
func (s *Service) Update(query string, dto *UpdateCategoryDTO) (*models.CategoryModel, error) {
	cat, err := s.GetByQuery(query)
	if err != nil || cat == nil {
		return cat, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Color != nil {
		updates["color"] = *dto.Color
	}
	if dto.CategoryURL != nil {
		updates["category_url"] = *dto.CategoryURL
	}
	return cat, s.db.Model(cat).Updates(updates).Error
}

// Delete removes the category and nulls category_id on every referencing blog
// in the same call; the blogs themselves are untouched. Deleting a category
// that does not exist is a no-op.
func (s *Service) Delete(query string) error {
	cat, err := s.GetByQuery(query)
	if err != nil || cat == nil {
		return err
	}
	s.db.Model(&models.BlogModel{}).Where("category_id = ?", cat.ID).Update("category_id", nil)
	return s.db.Delete(&models.CategoryModel{}, "id = ?", cat.ID).Error
}
