package specification

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// UserOwnedBy scopes any owned row to its owner. Every read and mutation
// in the service layer goes through it.
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// LinkedToProvider selects the user an external account was linked to.
type LinkedToProvider struct {
	Name           string
	ProviderUserID string
}

func (s LinkedToProvider) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"id IN (SELECT user_id FROM user_providers WHERE provider_name = ? AND provider_user_id = ?)",
		s.Name, s.ProviderUserID,
	)
}
