package models

import (
	"quickdesk/internal/shared/constants"
)

type CategoryModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;size:50;not null"`
	Description  string `gorm:"size:200"`
	Color        string `gorm:"size:7;not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	IsPredefined bool   `gorm:"not null;default:false"`
	CreatedByID  uint   `gorm:"not null;default:0;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}
