package models

import (
	"github.com/wanderplan/backend/internal/domain/identity"
)

// UserModel is the persistence model for users
type UserModel struct {
	BaseModel
	Username     string `gorm:"size:100;not null"`
	Email        string `gorm:"size:200;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
}

// TableName returns the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts UserModel to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
	}
}

// UserModelFromDomain creates a UserModel from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
	m.FromDomainBaseEntity(u.BaseEntity)
	return m
}
