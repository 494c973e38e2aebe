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

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// Passing a transaction handle binds every operation to that transaction.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its identifier.
func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByIDWithProfile retrieves an account and preloads whichever profile it owns.
func (repo *accountRepository) FindByIDWithProfile(ctx context.Context, id int64) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("CreatorProfile").
		Preload("AdvertiserProfile").
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account with profile")
	}

	return toAccountDomain(&accountM), nil
}

// UpdateOnboardingFields flips onboarding_completed and applies the optional fields.
// The WHERE clause only matches a row that is not onboarded yet, so under
// concurrent transactions the row lock makes the second writer affect nothing.
func (repo *accountRepository) UpdateOnboardingFields(ctx context.Context, id int64, fields *entity.OnboardingUpdate) (*entity.Account, error) {
	updates := map[string]any{
		"onboarding_completed": true,
	}
	if fields != nil && fields.Description != nil {
		updates["description"] = *fields.Description
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND onboarding_completed = ?", id, false).
		Updates(updates)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account onboarding fields")
	}

	account, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if result.RowsAffected == 0 {
		// The row exists, so the guard rejected it.
		return nil, errors.Wrapf(repository.ErrAccountAlreadyOnboarded, "account %d", id)
	}

	return account, nil
}

func toAccountDomain(m *model.AccountModel) *entity.Account {
	if m == nil {
		return nil
	}

	return &entity.Account{
		ID:                  m.ID,
		Name:                m.Name,
		Email:               m.Email,
		Kind:                entity.AccountKind(m.Kind),
		Description:         m.Description,
		OnboardingCompleted: m.OnboardingCompleted,
		CreatorProfile:      toCreatorProfileDomain(m.CreatorProfile),
		AdvertiserProfile:   toAdvertiserProfileDomain(m.AdvertiserProfile),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
