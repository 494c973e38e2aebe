// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "creatorhub/internal/delivery/context"
	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/domain/service"
	"creatorhub/internal/errors"
	"creatorhub/internal/usecase"
)

const outcomeSuccess = "success"

// onboardingService implements the OnboardingUsecase interface.
// It keeps no mutable state, so one instance serves all requests.
type onboardingService struct {
	accountRepo repository.AccountRepository
	txManager   repository.TransactionManager
	publisher   service.EventPublisher
	recorder    service.OnboardingRecorder
	logger      *slog.Logger
	now         func() time.Time
}

// NewOnboardingService is the constructor for onboardingService.
func NewOnboardingService(
	accountRepo repository.AccountRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	recorder service.OnboardingRecorder,
	logger *slog.Logger,
) usecase.OnboardingUsecase {
	return &onboardingService{
		accountRepo: accountRepo,
		txManager:   txManager,
		publisher:   publisher,
		recorder:    recorder,
		logger:      logger,
		now:         time.Now,
	}
}

// CompleteOnboarding loads the account, rejects repeated onboarding, then updates
// the account and inserts its profile inside one transaction.
func (srv *onboardingService) CompleteOnboarding(
	ctx context.Context,
	accountID int64,
	input *usecase.CompleteOnboardingInput,
) (result *usecase.OnboardingResult, err error) {
	logger := srv.getLogger(ctx).With(slog.Int64("account_id", accountID))
	start := srv.now()

	var kind entity.AccountKind
	defer func() {
		srv.record(kind, err, srv.now().Sub(start))
	}()

	if accountID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("account id must be positive")
	}

	logger.Debug("Starting onboarding")

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, mapOnboardingError(err, accountID)
	}
	kind = account.Kind

	if account.OnboardingCompleted {
		logger.Info("Onboarding rejected, account already onboarded", slog.String("kind", kind.String()))

		return nil, domainerrors.ErrAlreadyOnboarded.WrapMessage(fmt.Sprintf("account %d", accountID))
	}

	// Kind-specific required fields are checked before any write happens.
	draft, err := entity.NewProfileDraft(account, input.ProfileDetails())
	if err != nil {
		logger.Info("Onboarding payload rejected", slog.String("kind", kind.String()), slog.Any("error", err))

		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		updated, err := repoFactory.AccountRepo().UpdateOnboardingFields(ctx, accountID, input.AccountUpdate())
		if err != nil {
			return errors.Wrap(err, "failed to update account")
		}

		res := &usecase.OnboardingResult{Account: updated}

		switch d := draft.(type) {
		case *entity.CreatorDraft:
			profile, err := repoFactory.CreatorProfileRepo().Create(ctx, d)
			if err != nil {
				return errors.Wrap(err, "failed to create creator profile")
			}
			updated.CreatorProfile = profile
			res.CreatorID = &profile.ID
		case *entity.AdvertiserDraft:
			profile, err := repoFactory.AdvertiserProfileRepo().Create(ctx, d)
			if err != nil {
				return errors.Wrap(err, "failed to create advertiser profile")
			}
			updated.AdvertiserProfile = profile
			res.AdvertiserID = &profile.ID
		default:
			return domainerrors.ErrInvalidAccountKind.WrapMessage(fmt.Sprintf("unsupported profile draft %T", draft))
		}

		result = res

		return nil
	})
	if err != nil {
		mapped := mapOnboardingError(err, accountID)
		logger.Error("Onboarding rolled back",
			slog.String("kind", kind.String()),
			slog.String("code", domainerrors.Code(mapped)),
			slog.Any("error", err),
		)

		return nil, mapped
	}

	logger.Info("Onboarding completed",
		slog.String("kind", kind.String()),
		slog.Int64("profile_id", result.ProfileID()),
	)

	srv.publishOnboarded(ctx, logger, result)

	return result, nil
}

// publishOnboarded announces a committed onboarding. The state change is already
// durable, so a publish failure is only logged.
func (srv *onboardingService) publishOnboarded(ctx context.Context, logger *slog.Logger, result *usecase.OnboardingResult) {
	if srv.publisher == nil {
		return
	}

	event := &service.OnboardingEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		AccountID:   result.Account.ID,
		Kind:        result.Account.Kind.String(),
		ProfileID:   result.ProfileID(),
		CompletedAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishOnboardingEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish onboarding event", slog.Any("error", err))
	}
}

func (srv *onboardingService) record(kind entity.AccountKind, err error, elapsed time.Duration) {
	if srv.recorder == nil {
		return
	}

	outcome := outcomeSuccess
	if err != nil {
		outcome = domainerrors.Code(err)
	}
	srv.recorder.RecordOnboarding(kind.String(), outcome, elapsed)
}

func (srv *onboardingService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// mapOnboardingError converts repository sentinels into domain errors. Domain
// errors pass through, anything else is reported as a failed transaction.
func mapOnboardingError(err error, accountID int64) error {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return domainerrors.ErrAccountNotFound.WrapMessage(fmt.Sprintf("account %d", accountID))
	case errors.Is(err, repository.ErrAccountAlreadyOnboarded):
		return domainerrors.ErrAlreadyOnboarded.WrapMessage(fmt.Sprintf("account %d", accountID))
	case errors.Is(err, repository.ErrProfileAlreadyExists):
		return domainerrors.ErrProfileConflict.WrapMessage(fmt.Sprintf("account %d", accountID))
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Join(domainerrors.ErrTransactionFailed, err)
}
