package bulk

import (
	"context"
	"time"

	"github.com/awqat-travel/core/internal/models"
	"github.com/awqat-travel/core/internal/modules/csvio"
	"github.com/awqat-travel/core/internal/pkg/apperrors"
	"github.com/awqat-travel/core/internal/pkg/pagination"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	store Store
}

func NewService(db *gorm.DB, store Store) *Service {
	return &Service{db: db, store: store}
}

// Toggle adds or removes one article from the admin's selection.
func (s *Service) Toggle(ctx context.Context, owner, id string, selected bool) error {
	if id == "" {
		return apperrors.Validation("معرف المقال مطلوب")
	}
	if selected {
		return s.store.Add(ctx, owner, id)
	}
	return s.store.Remove(ctx, owner, id)
}

// SelectPage unions the given list page into the selection. Only the visible
// page is added; articles selected on other pages stay selected.
func (s *Service) SelectPage(ctx context.Context, owner string, q pagination.Query) error {
	var ids []string
	offset := (q.Page - 1) * q.Size
	err := s.db.Model(&models.BlogModel{}).
		Order("created_at DESC").
		Offset(offset).Limit(q.Size).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	return s.store.Add(ctx, owner, ids...)
}

// Clear drops the whole selection, across all pages.
func (s *Service) Clear(ctx context.Context, owner string) error {
	return s.store.Clear(ctx, owner)
}

// Selection returns the selected article IDs.
func (s *Service) Selection(ctx context.Context, owner string) ([]string, error) {
	ids, err := s.store.Members(ctx, owner)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Delete removes every selected article, then clears the selection.
func (s *Service) Delete(ctx context.Context, owner string) (int64, error) {
	ids, err := s.requireSelection(ctx, owner)
	if err != nil {
		return 0, err
	}

	res := s.db.Delete(&models.BlogModel{}, "id IN ?", ids)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, s.store.Clear(ctx, owner)
}

// SetStatus moves every selected article to the given status. Publishing
// stamps published_at on each article, including ones already published.
// Reverting to draft leaves the old timestamp in place.
func (s *Service) SetStatus(ctx context.Context, owner, status string) (int64, error) {
	if status != models.StatusPublished && status != models.StatusDraft {
		return 0, apperrors.Validation("الحالة غير صحيحة")
	}

	ids, err := s.requireSelection(ctx, owner)
	if err != nil {
		return 0, err
	}

	updates := map[string]interface{}{"status": status}
	if status == models.StatusPublished {
		updates["published_at"] = time.Now()
	}

	res := s.db.Model(&models.BlogModel{}).Where("id IN ?", ids).Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, s.store.Clear(ctx, owner)
}

// ExportCSV renders the selected articles as CSV and clears the selection.
func (s *Service) ExportCSV(ctx context.Context, owner string) (string, error) {
	ids, err := s.requireSelection(ctx, owner)
	if err != nil {
		return "", err
	}

	var blogs []models.BlogModel
	if err := s.db.Preload("Category").
		Where("id IN ?", ids).
		Order("created_at DESC").
		Find(&blogs).Error; err != nil {
		return "", err
	}

	text, err := csvio.Export(blogs)
	if err != nil {
		return "", err
	}
	return text, s.store.Clear(ctx, owner)
}

func (s *Service) requireSelection(ctx context.Context, owner string) ([]string, error) {
	ids, err := s.store.Members(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, apperrors.Validation("لم يتم تحديد أي مقالات")
	}
	return ids, nil
}
