// Package model holds the GORM persistence models mirroring the database tables.
package model

import "time"

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	Name                string `gorm:"type:varchar(100);not null"`
	Email               string `gorm:"type:varchar(255);unique;not null"`
	Kind                string `gorm:"type:varchar(20);not null;check:kind IN ('creator','advertiser')"`
	Description         string `gorm:"type:text;not null"`
	OnboardingCompleted bool   `gorm:"not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	CreatorProfile    *CreatorProfileModel    `gorm:"foreignKey:AccountID"`
	AdvertiserProfile *AdvertiserProfileModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
