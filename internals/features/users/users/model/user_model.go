// file: internals/features/users/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserFullName string `gorm:"column:user_full_name;type:varchar(120);not null" json:"user_full_name"`
	UserEmail    string `gorm:"column:user_email;type:varchar(160);not null;uniqueIndex:uq_users_email" json:"user_email"`
	UserPassword string `gorm:"column:user_password;type:varchar(120);not null" json:"-"`

	// Peran tunggal sederhana; RBAC penuh ada di layanan identity terpisah.
	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'staff';index" json:"user_role"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;type:timestamptz;index" json:"-"`
}

func (User) TableName() string { return "users" }

func (m *User) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}

func (m *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.UserPassword = string(hash)
	return nil
}

func (m *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.UserPassword), []byte(plain)) == nil
}
