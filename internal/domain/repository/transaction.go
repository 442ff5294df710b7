package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so all operations inside one Execute call share a connection.
type RepositoryFactory interface {
	// LogRepo returns a LogRepository bound to the current transaction.
	LogRepo() LogRepository

	// GeofenceRepo returns a GeofenceRepository bound to the current transaction.
	GeofenceRepo() GeofenceRepository

	// LinkRepo returns a LinkRepository bound to the current transaction.
	LinkRepo() LinkRepository

	// DeviceTokenRepo returns a DeviceTokenRepository bound to the current transaction.
	DeviceTokenRepo() DeviceTokenRepository

	// LocationRepo returns a LocationRepository bound to the current transaction.
	LocationRepo() LocationRepository
}
