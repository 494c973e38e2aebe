package postgres

import (
	"context"
	"fmt"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// advertiserProfileRepository implements the repository.AdvertiserProfileRepository interface using GORM.
type advertiserProfileRepository struct {
	db *gorm.DB
}

// NewAdvertiserProfileRepository is the constructor for advertiserProfileRepository.
func NewAdvertiserProfileRepository(db *gorm.DB) repository.AdvertiserProfileRepository {
	return &advertiserProfileRepository{db: db}
}

// Create validates the draft and inserts the advertiser profile.
func (repo *advertiserProfileRepository) Create(ctx context.Context, draft *entity.AdvertiserDraft) (*entity.AdvertiserProfile, error) {
	if draft == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("advertiser profile draft is required")
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	profileM := &model.AdvertiserProfileModel{
		AccountID:      draft.AccountID,
		Description:    draft.Description,
		UserName:       draft.UserName,
		ContentType:    draft.ContentType,
		SocialNetworks: fromSocialNetworks(draft.SocialNetworks),
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return nil, mapProfileCreateError(err, draft.AccountID, "advertiser")
	}

	return toAdvertiserProfileDomain(profileM), nil
}

func fromSocialNetworks(networks entity.SocialNetworks) datatypes.JSONMap {
	jsonMap := make(datatypes.JSONMap, len(networks))
	for network, handle := range networks {
		jsonMap[network] = handle
	}

	return jsonMap
}

func toSocialNetworks(jsonMap datatypes.JSONMap) entity.SocialNetworks {
	if jsonMap == nil {
		return nil
	}

	networks := make(entity.SocialNetworks, len(jsonMap))
	for network, handle := range jsonMap {
		if s, ok := handle.(string); ok {
			networks[network] = s
		} else {
			networks[network] = fmt.Sprint(handle)
		}
	}

	return networks
}

func toAdvertiserProfileDomain(m *model.AdvertiserProfileModel) *entity.AdvertiserProfile {
	if m == nil {
		return nil
	}

	return &entity.AdvertiserProfile{
		ID:             m.ID,
		AccountID:      m.AccountID,
		Description:    m.Description,
		UserName:       m.UserName,
		ContentType:    m.ContentType,
		SocialNetworks: toSocialNetworks(m.SocialNetworks),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
