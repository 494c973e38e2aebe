package postgres

import (
	"context"
	"testing"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsAccountAndProfileTogether(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectAccountSQL).WillReturnRows(accountRows(1, "creator", true, "bio"))
	mock.ExpectQuery(insertCreatorSQL).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit()

	var profileID int64
	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		if _, err := factory.AccountRepo().UpdateOnboardingFields(context.Background(), 1, &entity.OnboardingUpdate{}); err != nil {
			return err
		}

		profile, err := factory.CreatorProfileRepo().Create(context.Background(), newCreatorDraft())
		if err != nil {
			return err
		}
		profileID = profile.ID

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), profileID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_ProfileFailureRollsBackAccountUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectAccountSQL).WillReturnRows(accountRows(2, "advertiser", true, ""))
	mock.ExpectQuery(insertAdvertiserSQL).WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		if _, err := factory.AccountRepo().UpdateOnboardingFields(context.Background(), 2, nil); err != nil {
			return err
		}
		_, err := factory.AdvertiserProfileRepo().Create(context.Background(), newAdvertiserDraft())

		return err
	})

	assert.ErrorIs(t, err, repository.ErrProfileAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	assert.False(t, called)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	commitErr := errors.New("could not serialize access")
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(commitErr)

	err := txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return nil
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "failed to commit transaction", appErr.Details())
	assert.ErrorIs(t, err, commitErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackFailureKeepsOriginalError(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("connection lost"))

	original := domainerrors.ErrValidationFailed.WrapMessage(entity.MsgCreatorBirthDateRequired)
	err := txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return original
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "transaction rollback failed: connection lost")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_PanicRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_CancelledContextStillReleases(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	ctx, cancel := context.WithCancel(context.Background())
	err := txManager.Execute(ctx, func(repository.RepositoryFactory) error {
		cancel()

		return ctx.Err()
	})

	// Rollback either ran here or was already done by database/sql; both count as released.
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, err.Error(), "transaction rollback failed")
}
