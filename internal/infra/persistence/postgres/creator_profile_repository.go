package postgres

import (
	"context"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// creatorProfileRepository implements the repository.CreatorProfileRepository interface using GORM.
type creatorProfileRepository struct {
	db *gorm.DB
}

// NewCreatorProfileRepository is the constructor for creatorProfileRepository.
func NewCreatorProfileRepository(db *gorm.DB) repository.CreatorProfileRepository {
	return &creatorProfileRepository{db: db}
}

// Create validates the draft and inserts the creator profile.
func (repo *creatorProfileRepository) Create(ctx context.Context, draft *entity.CreatorDraft) (*entity.CreatorProfile, error) {
	if draft == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("creator profile draft is required")
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	profileM := &model.CreatorProfileModel{
		AccountID:     draft.AccountID,
		Description:   draft.Description,
		UserName:      draft.UserName,
		ContentType:   draft.ContentType,
		BirthDate:     draft.BirthDate,
		YoutubeLinked: draft.YoutubeLinked,
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return nil, mapProfileCreateError(err, draft.AccountID, "creator")
	}

	return toCreatorProfileDomain(profileM), nil
}

// mapProfileCreateError converts insert failures on a profile table into repository and domain errors.
func mapProfileCreateError(err error, accountID int64, kind string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrapf(repository.ErrProfileAlreadyExists, "%s profile for account %d", kind, accountID)
	case isForeignKeyConstraintViolation(err):
		return errors.Wrapf(repository.ErrAccountNotFound, "%s profile references account %d", kind, accountID)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required " + kind + " profile information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+kind+" profile")
	}
}

func toCreatorProfileDomain(m *model.CreatorProfileModel) *entity.CreatorProfile {
	if m == nil {
		return nil
	}

	return &entity.CreatorProfile{
		ID:            m.ID,
		AccountID:     m.AccountID,
		Description:   m.Description,
		UserName:      m.UserName,
		ContentType:   m.ContentType,
		BirthDate:     m.BirthDate,
		YoutubeLinked: m.YoutubeLinked,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
