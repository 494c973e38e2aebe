package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/errors"
	mockRepo "creatorhub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_GetAccount(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name        string
		repoAccount *entity.Account
		repoErr     error
		wantCode    string
	}{
		{
			name: "onboarded creator",
			repoAccount: &entity.Account{
				ID:                  1,
				Kind:                entity.AccountKindCreator,
				OnboardingCompleted: true,
				CreatorProfile:      &entity.CreatorProfile{ID: 10, AccountID: 1},
			},
		},
		{
			name:     "missing account",
			repoErr:  repository.ErrAccountNotFound,
			wantCode: "ACCOUNT_NOT_FOUND",
		},
		{
			name:     "storage failure",
			repoErr:  domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to find account"),
			wantCode: "DATABASE_EXECUTE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountRepo := mockRepo.NewMockAccountRepository(t)
			srv := NewAccountService(accountRepo, logger)

			ctx := context.Background()
			accountRepo.EXPECT().FindByIDWithProfile(ctx, int64(1)).Return(tt.repoAccount, tt.repoErr)

			account, err := srv.GetAccount(ctx, 1)

			if tt.repoErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.repoAccount, account)

				return
			}

			assert.Nil(t, account)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, domainerrors.Code(err))
		})
	}
}
