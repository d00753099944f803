package auth

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

func TestRegisterBootstrapsAdmin(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)

	user, err := svc.Register("admin", "password123", "a@b.c")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Password == "password123" {
		t.Error("password must be stored hashed")
	}

	var roles int64
	db.Model(&models.UserRoleModel{}).
		Where("user_id = ? AND role = ?", user.ID, models.RoleAdmin).
		Count(&roles)
	if roles != 1 {
		t.Errorf("admin role rows = %d", roles)
	}
}

func TestRegisterClosedAfterBootstrap(t *testing.T) {
	svc := NewService(openTestDB(t))

	if _, err := svc.Register("admin", "password123", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register("second", "password123", ""); !apperrors.Is(err, apperrors.KindPrecondition) {
		t.Errorf("second register err = %v, want precondition", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := NewService(openTestDB(t))

	if _, err := svc.Register("admin", "short", ""); !apperrors.Is(err, apperrors.KindValidation) {
		t.Errorf("err = %v, want validation", err)
	}
}

func TestLoginIssuesTokenAndStampsLastLogin(t *testing.T) {
	svc := NewService(openTestDB(t))

	if _, err := svc.Register("admin", "password123", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	result, err := svc.Login("admin", "password123", "127.0.0.1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Error("token missing")
	}
	if result.User.LastLoginTime == nil {
		t.Error("last login time not stamped")
	}
}

func TestLoginRejectsBadCredentialsUniformly(t *testing.T) {
	svc := NewService(openTestDB(t))

	if _, err := svc.Register("admin", "password123", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, wrongPass := svc.Login("admin", "nope", "")
	_, wrongUser := svc.Login("ghost", "password123", "")

	if !apperrors.Is(wrongPass, apperrors.KindValidation) || !apperrors.Is(wrongUser, apperrors.KindValidation) {
		t.Fatalf("errs = %v / %v, want validation", wrongPass, wrongUser)
	}
	if wrongPass.Error() != wrongUser.Error() {
		t.Error("wrong user and wrong password must be indistinguishable")
	}
}
