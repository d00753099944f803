package bulk

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/awqat-travel/core/internal/database"
	"github.com/awqat-travel/core/internal/models"
	"github.com/awqat-travel/core/internal/pkg/apperrors"
	"github.com/awqat-travel/core/internal/pkg/pagination"
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

// seedBlogs creates n draft articles with descending creation times, so the
// newest-first list order matches the slice order.
func seedBlogs(t *testing.T, db *gorm.DB, n int) []models.BlogModel {
	t.Helper()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	blogs := make([]models.BlogModel, n)
	for i := 0; i < n; i++ {
		blogs[i] = models.BlogModel{
			Title:   fmt.Sprintf("Post %d", i),
			Content: "body",
			Slug:    fmt.Sprintf("post-%d", i),
			Status:  models.StatusDraft,
		}
		blogs[i].CreatedAt = base.Add(-time.Duration(i) * time.Hour)
		if err := db.Create(&blogs[i]).Error; err != nil {
			t.Fatalf("seed blog %d: %v", i, err)
		}
	}
	return blogs
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	db := openTestDB(t)
	return NewService(db, NewMemoryStore()), db
}

func TestSelectPageUnionsAcrossPages(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	seedBlogs(t, db, 12)

	if err := svc.SelectPage(ctx, "admin", pagination.Query{Page: 1, Size: 5}); err != nil {
		t.Fatalf("SelectPage 1: %v", err)
	}
	if err := svc.SelectPage(ctx, "admin", pagination.Query{Page: 2, Size: 5}); err != nil {
		t.Fatalf("SelectPage 2: %v", err)
	}

	ids, err := svc.Selection(ctx, "admin")
	if err != nil {
		t.Fatalf("Selection: %v", err)
	}
	if len(ids) != 10 {
		t.Errorf("two pages of 5 should union to 10, got %d", len(ids))
	}

	// Re-selecting a page already in the set changes nothing.
	if err := svc.SelectPage(ctx, "admin", pagination.Query{Page: 1, Size: 5}); err != nil {
		t.Fatalf("SelectPage again: %v", err)
	}
	ids, _ = svc.Selection(ctx, "admin")
	if len(ids) != 10 {
		t.Errorf("re-select should be idempotent, got %d", len(ids))
	}
}

func TestClearDropsSelectionGlobally(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	seedBlogs(t, db, 12)

	svc.SelectPage(ctx, "admin", pagination.Query{Page: 1, Size: 10})
	svc.SelectPage(ctx, "admin", pagination.Query{Page: 2, Size: 10})

	if err := svc.Clear(ctx, "admin"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	ids, _ := svc.Selection(ctx, "admin")
	if len(ids) != 0 {
		t.Errorf("clear must empty the whole selection, got %d", len(ids))
	}
}

func TestToggleAddAndRemove(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	blogs := seedBlogs(t, db, 2)

	if err := svc.Toggle(ctx, "admin", blogs[0].ID, true); err != nil {
		t.Fatalf("Toggle on: %v", err)
	}
	if err := svc.Toggle(ctx, "admin", blogs[1].ID, true); err != nil {
		t.Fatalf("Toggle on: %v", err)
	}
	if err := svc.Toggle(ctx, "admin", blogs[0].ID, false); err != nil {
		t.Fatalf("Toggle off: %v", err)
	}

	ids, _ := svc.Selection(ctx, "admin")
	if len(ids) != 1 || ids[0] != blogs[1].ID {
		t.Errorf("selection = %v", ids)
	}

	if err := svc.Toggle(ctx, "admin", "", true); !apperrors.Is(err, apperrors.KindValidation) {
		t.Errorf("empty id err = %v, want validation", err)
	}
}

func TestOperationsRequireSelection(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Delete(ctx, "admin"); !apperrors.Is(err, apperrors.KindValidation) {
		t.Errorf("Delete err = %v, want validation", err)
	}
	if _, err := svc.SetStatus(ctx, "admin", models.StatusPublished); !apperrors.Is(err, apperrors.KindValidation) {
		t.Errorf("SetStatus err = %v, want validation", err)
	}
	if _, err := svc.ExportCSV(ctx, "admin"); !apperrors.Is(err, apperrors.KindValidation) {
		t.Errorf("ExportCSV err = %v, want validation", err)
	}
}

func TestDeleteRemovesSelectedAndClears(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	blogs := seedBlogs(t, db, 5)

	svc.Toggle(ctx, "admin", blogs[0].ID, true)
	svc.Toggle(ctx, "admin", blogs[1].ID, true)

	n, err := svc.Delete(ctx, "admin")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d", n)
	}

	var count int64
	db.Model(&models.BlogModel{}).Count(&count)
	if count != 3 {
		t.Errorf("remaining = %d", count)
	}

	ids, _ := svc.Selection(ctx, "admin")
	if len(ids) != 0 {
		t.Errorf("selection must clear after the operation, got %v", ids)
	}
}

func TestSetStatusPublishStampsEverySelected(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	blogs := seedBlogs(t, db, 10)

	// One of the two is already published with an old timestamp.
	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	db.Model(&models.BlogModel{}).Where("id = ?", blogs[1].ID).
		Updates(map[string]interface{}{"status": models.StatusPublished, "published_at": old})

	svc.Toggle(ctx, "admin", blogs[0].ID, true)
	svc.Toggle(ctx, "admin", blogs[1].ID, true)

	n, err := svc.SetStatus(ctx, "admin", models.StatusPublished)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if n != 2 {
		t.Errorf("updated = %d", n)
	}

	for _, id := range []string{blogs[0].ID, blogs[1].ID} {
		var b models.BlogModel
		db.First(&b, "id = ?", id)
		if b.Status != models.StatusPublished {
			t.Errorf("blog %s status = %q", id, b.Status)
		}
		if b.PublishedAt == nil || !b.PublishedAt.After(old) {
			t.Errorf("blog %s published_at = %v, want fresh stamp", id, b.PublishedAt)
		}
	}

	// The other eight are untouched.
	var drafts int64
	db.Model(&models.BlogModel{}).Where("status = ?", models.StatusDraft).Count(&drafts)
	if drafts != 8 {
		t.Errorf("drafts = %d", drafts)
	}
}

func TestSetStatusRevertKeepsPublishedAt(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	blogs := seedBlogs(t, db, 1)

	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	db.Model(&models.BlogModel{}).Where("id = ?", blogs[0].ID).
		Updates(map[string]interface{}{"status": models.StatusPublished, "published_at": old})

	svc.Toggle(ctx, "admin", blogs[0].ID, true)
	if _, err := svc.SetStatus(ctx, "admin", models.StatusDraft); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	var b models.BlogModel
	db.First(&b, "id = ?", blogs[0].ID)
	if b.Status != models.StatusDraft {
		t.Errorf("status = %q", b.Status)
	}
	if b.PublishedAt == nil || !b.PublishedAt.Equal(old) {
		t.Errorf("published_at = %v, want the old stamp kept", b.PublishedAt)
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	blogs := seedBlogs(t, db, 1)
	svc.Toggle(ctx, "admin", blogs[0].ID, true)

	if _, err := svc.SetStatus(ctx, "admin", "archived"); !apperrors.Is(err, apperrors.KindValidation) {
		t.Errorf("err = %v, want validation", err)
	}
}

func TestExportCSVContainsOnlySelected(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	blogs := seedBlogs(t, db, 3)

	svc.Toggle(ctx, "admin", blogs[0].ID, true)

	text, err := svc.ExportCSV(ctx, "admin")
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if !strings.Contains(text, "Post 0") {
		t.Error("selected article missing from export")
	}
	if strings.Contains(text, "Post 1") || strings.Contains(text, "Post 2") {
		t.Error("unselected articles leaked into export")
	}

	ids, _ := svc.Selection(ctx, "admin")
	if len(ids) != 0 {
		t.Errorf("selection must clear after export, got %v", ids)
	}
}

func TestSelectionsAreIsolatedPerAdmin(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	blogs := seedBlogs(t, db, 2)

	svc.Toggle(ctx, "alice", blogs[0].ID, true)
	svc.Toggle(ctx, "bob", blogs[1].ID, true)

	aliceIDs, _ := svc.Selection(ctx, "alice")
	bobIDs, _ := svc.Selection(ctx, "bob")
	if len(aliceIDs) != 1 || aliceIDs[0] != blogs[0].ID {
		t.Errorf("alice = %v", aliceIDs)
	}
	if len(bobIDs) != 1 || bobIDs[0] != blogs[1].ID {
		t.Errorf("bob = %v", bobIDs)
	}
}
