// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// AccountRepo creates a new account repository instance bound to the transaction.
func (f *gormRepositoryFactory) AccountRepo() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

// CreatorProfileRepo creates a new creator profile repository instance bound to the transaction.
func (f *gormRepositoryFactory) CreatorProfileRepo() repository.CreatorProfileRepository {
	return NewCreatorProfileRepository(f.tx)
}

// AdvertiserProfileRepo creates a new advertiser profile repository instance bound to the transaction.
func (f *gormRepositoryFactory) AdvertiserProfileRepo() repository.AdvertiserProfileRepository {
	return NewAdvertiserProfileRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.NewDatabaseExecuteError(tx.Error, "failed to begin transaction")
	}

	// A panic inside the callback must still release the transaction.
	defer func() {
		if r := recover(); r != nil {
			rollback(tx)
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := rollback(tx); rbErr != nil {
			// The business error stays the one callers match on.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		// A failed COMMIT leaves nothing to undo; make sure the connection is released.
		rollback(tx)

		return domainerrors.NewDatabaseExecuteError(err, "failed to commit transaction")
	}

	return nil
}

// rollback aborts tx. A transaction that database/sql already closed, for
// example after context cancellation, counts as rolled back.
func rollback(tx *gorm.DB) error {
	err := tx.Rollback().Error
	if err == nil || errors.Is(err, sql.ErrTxDone) {
		return nil
	}

	return err
}
