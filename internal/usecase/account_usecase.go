package usecase

import (
	"context"

	"creatorhub/internal/domain/entity"
)

// AccountUsecase defines read operations on accounts.
type AccountUsecase interface {
	// GetAccount returns the account together with whichever profile it owns.
	GetAccount(ctx context.Context, accountID int64) (*entity.Account, error)
}
