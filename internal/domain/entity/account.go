// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the registered identity on the platform. Its Kind is fixed at
// registration and decides which profile onboarding provisions.
type Account struct {
	ID                  int64              // Serial identifier of the account.
	Name                string             // Display name.
	Email               string             // Login identifier, unique per account.
	Kind                AccountKind        // creator or advertiser, immutable.
	Description         string             // Free-form description shown on the account.
	OnboardingCompleted bool               // Flips false to true exactly once.
	CreatorProfile      *CreatorProfile    // Set only for onboarded creator accounts when loaded with profiles.
	AdvertiserProfile   *AdvertiserProfile // Set only for onboarded advertiser accounts when loaded with profiles.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// OnboardingUpdate carries the account columns written when onboarding completes.
// The onboarding flag itself is always set; nil fields are left untouched.
type OnboardingUpdate struct {
	Description *string
}
