package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ruimonteiro/playerdesk/internal/domain/account"
)

type AccountRepository struct {
	db             *sqlx.DB
	acquireTimeout time.Duration
}

func NewAccountRepository(db *sqlx.DB, acquireTimeout time.Duration) *AccountRepository {
	return &AccountRepository{
		db:             db,
		acquireTimeout: acquireTimeout,
	}
}

func (r *AccountRepository) List(ctx context.Context) ([]account.Account, error) {
	ctx, cancel := withAcquireTimeout(ctx, r.acquireTimeout)
	defer cancel()

	const query = `
SELECT a.account_number, a.branch_name, a.balance,
       COALESCE(d.customer_name, '') AS customer_name
FROM account a
LEFT JOIN depositor d ON d.account_number = a.account_number
ORDER BY a.account_number, d.customer_name`

	var rows []struct {
		AccountNumber string  `db:"account_number"`
		BranchName    string  `db:"branch_name"`
		Balance       float64 `db:"balance"`
		CustomerName  string  `db:"customer_name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select accounts: %w", err)
	}

	out := make([]account.Account, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		i, ok := index[row.AccountNumber]
		if !ok {
			out = append(out, account.Account{
				Number:     row.AccountNumber,
				BranchName: row.BranchName,
				Balance:    row.Balance,
			})
			i = len(out) - 1
			index[row.AccountNumber] = i
		}
		if row.CustomerName != "" {
			out[i].Depositors = append(out[i].Depositors, row.CustomerName)
		}
	}

	return out, nil
}

// Delete removes depositor rows first, then the account row, inside
// one transaction. Referential integrity requires that order; either
// both deletes commit or neither does.
func (r *AccountRepository) Delete(ctx context.Context, number string) (int64, error) {
	ctx, cancel := withAcquireTimeout(ctx, r.acquireTimeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx for account delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const deleteDepositorsQuery = `
DELETE FROM depositor
WHERE account_number = $1`

	if _, err := tx.ExecContext(ctx, deleteDepositorsQuery, number); err != nil {
		return 0, fmt.Errorf("delete depositors: %w", err)
	}

	const deleteAccountQuery = `
DELETE FROM account
WHERE account_number = $1`

	result, err := tx.ExecContext(ctx, deleteAccountQuery, number)
	if err != nil {
		return 0, fmt.Errorf("delete account: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("account delete rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit account delete: %w", err)
	}

	return deleted, nil
}
