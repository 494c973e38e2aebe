package repository

import (
	"context"
	"errors"

	"creatorhub/internal/domain/entity"
)

// ErrProfileAlreadyExists is returned when the unique account reference of a profile table rejects an insert.
var ErrProfileAlreadyExists = errors.New("profile already exists for account")

// CreatorProfileRepository defines persistence for creator profiles.
type CreatorProfileRepository interface {
	// Create validates the draft and inserts a new creator profile.
	Create(ctx context.Context, draft *entity.CreatorDraft) (*entity.CreatorProfile, error)
}

// AdvertiserProfileRepository defines persistence for advertiser profiles.
type AdvertiserProfileRepository interface {
	// Create validates the draft and inserts a new advertiser profile.
	Create(ctx context.Context, draft *entity.AdvertiserDraft) (*entity.AdvertiserProfile, error)
}
