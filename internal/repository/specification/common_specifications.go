package specification

import (
	"notecraft-be/internal/repository/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// NewestFirst orders by creation time, most recent first.
type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Scopes(scope.OrderByCreatedDesc)
}

// RecentlyUpdatedFirst orders by last update, most recent first.
type RecentlyUpdatedFirst struct{}

func (s RecentlyUpdatedFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Scopes(scope.OrderByUpdatedDesc)
}
