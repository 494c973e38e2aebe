package model

import (
	"time"

	"gorm.io/datatypes"
)

// CreatorProfileModel mirrors the 'creator_profiles' table. AccountID references accounts.id.
type CreatorProfileModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	AccountID     int64     `gorm:"not null;uniqueIndex"`
	Description   string    `gorm:"type:text;not null"`
	UserName      string    `gorm:"type:varchar(100);not null"`
	ContentType   string    `gorm:"type:varchar(100);not null"`
	BirthDate     time.Time `gorm:"type:date;not null"`
	YoutubeLinked bool      `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CreatorProfileModel) TableName() string {
	return "creator_profiles"
}

// AdvertiserProfileModel mirrors the 'advertiser_profiles' table. AccountID references accounts.id.
type AdvertiserProfileModel struct {
	ID             int64             `gorm:"primaryKey;autoIncrement"`
	AccountID      int64             `gorm:"not null;uniqueIndex"`
	Description    string            `gorm:"type:text;not null"`
	UserName       string            `gorm:"type:varchar(100);not null"`
	ContentType    string            `gorm:"type:varchar(100);not null"`
	SocialNetworks datatypes.JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdvertiserProfileModel) TableName() string {
	return "advertiser_profiles"
}
