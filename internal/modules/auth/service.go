// Package auth handles admin login and the one-time bootstrap registration.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/awqat-travel/core/internal/models"
	"github.com/awqat-travel/core/internal/pkg/apperrors"
	"github.com/awqat-travel/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 7 * 24 * time.Hour

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// LoginResult carries the signed token and the account it belongs to.
type LoginResult struct {
	Token string            `json:"token"`
	User  *models.UserModel `json:"user"`
}

// Login checks credentials and issues a JWT. Wrong username and wrong
// password share one message.
func (s *Service) Login(username, password, ip string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.Validation("اسم المستخدم وكلمة المرور مطلوبان")
	}

	var user models.UserModel
	err := s.db.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Validation("بيانات الدخول غير صحيحة")
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.Validation("بيانات الدخول غير صحيحة")
	}

	token, err := jwt.Sign(user.ID, tokenTTL)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s.db.Model(&user).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	})
	user.LastLoginTime = &now

	return &LoginResult{Token: token, User: &user}, nil
}

// Register creates the first admin account. It only works while the users
// table is empty; after bootstrap the endpoint is permanently closed.
func (s *Service) Register(username, password, mail string) (*models.UserModel, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < 8 {
		return nil, apperrors.Validation("اسم المستخدم مطلوب وكلمة المرور 8 أحرف على الأقل")
	}

	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.Precondition("تم إنشاء حساب المدير مسبقاً")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.UserModel{
		Username: username,
		Password: string(hash),
		Mail:     strings.TrimSpace(mail),
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserRoleModel{
			UserID: user.ID,
			Role:   models.RoleAdmin,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID loads an account without its password hash semantics changing;
// the model already hides the hash from JSON.
func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("الحساب غير موجود")
		}
		return nil, err
	}
	return &user, nil
}
