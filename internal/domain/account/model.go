package account

import "context"

// Account is a bank account row. Deletion is the only mutation this
// service performs on it.
type Account struct {
	Number     string
	BranchName string
	Balance    float64
	Depositors []string
}

type Repository interface {
	List(ctx context.Context) ([]Account, error)
	// Delete removes the depositor join rows and the account row as one
	// atomic unit and reports how many account rows went away. Deleting
	// an unknown number is a no-op, not an error.
	Delete(ctx context.Context, number string) (int64, error)
}
