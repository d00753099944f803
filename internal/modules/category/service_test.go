package category

import (
	"fmt"
	"strings"
	"testing"

	"github.com/awqat-travel/core/internal/database"
	"github.com/awqat-travel/core/internal/models"
	"github.com/awqat-travel/core/internal/pkg/apperrors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreateDerivesSlugAndColorDefault(t *testing.T) {
	svc := NewService(openTestDB(t))

	cat, err := svc.Create(&CreateCategoryDTO{Name: "Beach Chalets"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if cat.Slug != "beach-chalets" {
		t.Errorf("slug = %q", cat.Slug)
	}
	if cat.Color != models.DefaultCategoryColor {
		t.Errorf("color default = %q", cat.Color)
	}
}

func TestCreateRejectsDuplicates(t *testing.T) {
	svc := NewService(openTestDB(t))

	if _, err := svc.Create(&CreateCategoryDTO{Name: "Villas"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(&CreateCategoryDTO{Name: "Villas"}); !apperrors.Is(err, apperrors.KindValidation) {
		t.Errorf("duplicate create err = %v, want validation", err)
	}
}

func TestUpdatePreservesSlug(t *testing.T) {
	svc := NewService(openTestDB(t))

	cat, err := svc.Create(&CreateCategoryDTO{Name: "Old Name"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newName := "Brand New Name"
	if _, err := svc.Update(cat.ID, &UpdateCategoryDTO{Name: &newName}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored, _ := svc.GetByID(cat.ID)
	if stored.Name != newName {
		t.Errorf("name = %q", stored.Name)
	}
	if stored.Slug != "old-name" {
		t.Errorf("slug must keep its creation value, got %q", stored.Slug)
	}
}

func TestDeleteNullsReferencingBlogs(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)

	cat, err := svc.Create(&CreateCategoryDTO{Name: "Doomed"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	b := models.BlogModel{Title: "t", Content: "c", Slug: "t", Status: models.StatusDraft, CategoryID: &cat.ID}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("seed blog: %v", err)
	}

	if err := svc.Delete(cat.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var stored models.BlogModel
	if err := db.First(&stored, "id = ?", b.ID).Error; err != nil {
		t.Fatalf("blog should survive category delete: %v", err)
	}
	if stored.CategoryID != nil {
		t.Errorf("category_id should be nulled, got %v", *stored.CategoryID)
	}

	if got, _ := svc.GetByID(cat.ID); got != nil {
		t.Errorf("category should be gone, got %+v", got)
	}
}

func TestUpdateAndDeleteResolveBySlug(t *testing.T) {
	svc := NewService(openTestDB(t))

	cat, err := svc.Create(&CreateCategoryDTO{Name: "Sea View"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	desc := "chalets by the sea"
	updated, err := svc.Update("sea-view", &UpdateCategoryDTO{Description: &desc})
	if err != nil {
		t.Fatalf("Update by slug: %v", err)
	}
	if updated == nil || updated.ID != cat.ID {
		t.Fatalf("update by slug resolved %+v", updated)
	}
	stored, _ := svc.GetByID(cat.ID)
	if stored.Description != desc {
		t.Errorf("description = %q", stored.Description)
	}

	if err := svc.Delete("sea-view"); err != nil {
		t.Fatalf("Delete by slug: %v", err)
	}
	if got, _ := svc.GetByID(cat.ID); got != nil {
		t.Errorf("category should be gone, got %+v", got)
	}

	if err := svc.Delete("sea-view"); err != nil {
		t.Errorf("deleting a missing category should be a no-op, got %v", err)
	}
}

func TestGetByQueryFindsBySlugAndName(t *testing.T) {
	svc := NewService(openTestDB(t))

	cat, err := svc.Create(&CreateCategoryDTO{Name: "Resorts"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, q := range []string{cat.ID, "resorts", "Resorts"} {
		got, err := svc.GetByQuery(q)
		if err != nil {
			t.Fatalf("GetByQuery(%q): %v", q, err)
		}
		if got == nil || got.ID != cat.ID {
			t.Errorf("GetByQuery(%q) = %+v", q, got)
		}
	}

	if got, _ := svc.GetByQuery("missing"); got != nil {
		t.Errorf("missing query should return nil, got %+v", got)
	}
}
