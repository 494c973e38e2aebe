package entity

import "time"

// CreatorProfile holds data specific to creator accounts.
type CreatorProfile struct {
	ID            int64     // Profile identifier, independent of the account ID.
	AccountID     int64     // Owning account, one profile per account.
	Description   string    // Channel or creator description.
	UserName      string    // Public display handle.
	ContentType   string    // Content classification, e.g. "gaming".
	BirthDate     time.Time // Required for a creator profile to exist.
	YoutubeLinked bool      // Whether an external video platform account is linked.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
