package entity

import "time"

// AdvertiserProfile holds data specific to advertiser accounts.
type AdvertiserProfile struct {
	ID             int64          // Profile identifier, independent of the account ID.
	AccountID      int64          // Owning account, one profile per account.
	Description    string         // Brand description.
	UserName       string         // Public display handle.
	ContentType    string         // Content classification the advertiser targets.
	SocialNetworks SocialNetworks // At least one network handle or link.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
