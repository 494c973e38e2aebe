// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"creatorhub/internal/domain/entity"
)

var (
	// ErrAccountNotFound is returned when no account row matches the identifier.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyOnboarded is returned when the onboarding transition finds the flag already set.
	ErrAccountAlreadyOnboarded = errors.New("account already onboarded")
)

// AccountRepository defines the persistence operations on accounts used by onboarding.
type AccountRepository interface {
	// FindByID retrieves a single account by its identifier without profiles.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByIDWithProfile retrieves an account together with whichever profile it owns.
	FindByIDWithProfile(ctx context.Context, id int64) (*entity.Account, error)

	// UpdateOnboardingFields marks the account onboarded and applies fields.
	// The write only succeeds while onboarding_completed is still false, so of two
	// concurrent transactions at most one can perform it; the other gets
	// ErrAccountAlreadyOnboarded.
	UpdateOnboardingFields(ctx context.Context, id int64, fields *entity.OnboardingUpdate) (*entity.Account, error)
}
