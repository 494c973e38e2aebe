// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"strings"
	"time"

	"creatorhub/internal/domain/entity"
)

// OnboardingUsecase defines the one-time onboarding workflow of an account.
type OnboardingUsecase interface {
	// CompleteOnboarding marks the account onboarded and provisions the profile
	// matching its kind in one transaction. It succeeds at most once per account.
	CompleteOnboarding(ctx context.Context, accountID int64, input *CompleteOnboardingInput) (*OnboardingResult, error)
}

// --- Input DTOs ---

// CompleteOnboardingInput is the kind-agnostic onboarding payload.
// BirthDate is required for creators and SocialNetworks for advertisers.
type CompleteOnboardingInput struct {
	Description    *string
	UserName       *string
	ContentType    *string
	BirthDate      *time.Time
	SocialNetworks map[string]string
}

// ProfileDetails converts the input into the domain payload used to build a profile draft.
func (in *CompleteOnboardingInput) ProfileDetails() entity.ProfileDetails {
	if in == nil {
		return entity.ProfileDetails{}
	}

	return entity.ProfileDetails{
		Description:    deref(in.Description),
		UserName:       deref(in.UserName),
		ContentType:    deref(in.ContentType),
		BirthDate:      in.BirthDate,
		SocialNetworks: entity.SocialNetworks(in.SocialNetworks),
	}
}

// AccountUpdate returns the account columns copied from the payload.
func (in *CompleteOnboardingInput) AccountUpdate() *entity.OnboardingUpdate {
	update := &entity.OnboardingUpdate{}
	if in != nil && in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		update.Description = &description
	}

	return update
}

// --- Output DTOs ---

// OnboardingResult is the onboarded account plus the identifier of the profile created for it.
// Exactly one of CreatorID and AdvertiserID is set.
type OnboardingResult struct {
	Account      *entity.Account
	CreatorID    *int64
	AdvertiserID *int64
}

// ProfileID returns whichever profile identifier is set.
func (r *OnboardingResult) ProfileID() int64 {
	switch {
	case r.CreatorID != nil:
		return *r.CreatorID
	case r.AdvertiserID != nil:
		return *r.AdvertiserID
	default:
		return 0
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
