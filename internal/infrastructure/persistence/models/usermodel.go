package models

import (
	"quickdesk/internal/shared/constants"
)

// UserModel is the database persistence model for users.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID                   uint   `gorm:"primaryKey"`
	FirstName            string `gorm:"size:50;not null"`
	LastName             string `gorm:"size:50;not null"`
	Email                string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash         string `gorm:"size:255;not null"`
	Role                 string `gorm:"size:20;not null;default:end_user;index"`
	CategoryOfInterestID *uint  `gorm:"index"`
	IsActive             bool   `gorm:"not null;default:true"`
	CreatedAt            int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt            int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
