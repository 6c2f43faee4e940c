package models

import (
	"quickdesk/internal/shared/constants"
)

type RoleRequestModel struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"not null;index"`
	RequestedRole string `gorm:"size:20;not null"`
	Reason        string `gorm:"size:500"`
	Status        string `gorm:"size:20;not null;default:pending;index"`
	ReviewedByID  *uint  `gorm:"index"`
	ReviewedAt    *int64
	AdminNotes    string `gorm:"size:500"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (RoleRequestModel) TableName() string {
	return constants.TableRoleRequests
}
