package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error or panics, the transaction is rolled back. Otherwise, it's committed.
	// The transaction is always released before Execute returns, including when ctx is cancelled.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory is the unit of work handed to Execute's callback.
// Every repository it returns is bound to the same database transaction.
type RepositoryFactory interface {
	// AccountRepo returns an AccountRepository instance bound to the current transaction.
	AccountRepo() AccountRepository

	// CreatorProfileRepo returns a CreatorProfileRepository instance bound to the current transaction.
	CreatorProfileRepo() CreatorProfileRepository

	// AdvertiserProfileRepo returns an AdvertiserProfileRepository instance bound to the current transaction.
	AdvertiserProfileRepo() AdvertiserProfileRepository
}
