package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "creatorhub/internal/delivery/context"
	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/errors"
	"creatorhub/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(accountRepo repository.AccountRepository, logger *slog.Logger) usecase.AccountUsecase {
	return &accountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// GetAccount retrieves the account including its creator or advertiser profile.
func (srv *accountService) GetAccount(ctx context.Context, accountID int64) (*entity.Account, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Getting account", slog.Int64("account_id", accountID))

	account, err := srv.accountRepo.FindByIDWithProfile(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage(fmt.Sprintf("account %d", accountID))
		}

		return nil, errors.Wrap(err, "failed to get account")
	}

	return account, nil
}
