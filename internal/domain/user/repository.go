package user

import "context"

// UserRepository defines data access for login accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// LinkEmployee points the account at its employee record. Used when HR
	// creates an employee together with a login account.
	LinkEmployee(ctx context.Context, userID, employeeID string) error

	Delete(ctx context.Context, id string) error
}
