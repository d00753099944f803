package models

import "time"

// UserModel is an admin account.
type UserModel struct {
	Base
	Username      string     `json:"username" gorm:"uniqueIndex;not null"`
	Name          string     `json:"name"`
	Password      string     `json:"-"        gorm:"not null"`
	Mail          string     `json:"mail"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"-"`
}

func (UserModel) TableName() string { return "users" }

// RoleAdmin is the role required for every admin operation.
const RoleAdmin = "admin"

// UserRoleModel assigns a role to a user. Authorization checks treat this
// table as an opaque oracle: a row with role "admin" grants admin access.
type UserRoleModel struct {
	Base
	UserID string `json:"user_id" gorm:"index;not null"`
	Role   string `json:"role"    gorm:"index;not null"`
}

func (UserRoleModel) TableName() string { return "user_roles" }
