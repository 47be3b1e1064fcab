package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ruimonteiro/playerdesk/internal/domain/account"
	"github.com/ruimonteiro/playerdesk/internal/platform/logging"
)

type AccountService struct {
	accountRepo account.Repository
	logger      *logging.Logger
}

func NewAccountService(accountRepo account.Repository, logger *logging.Logger) *AccountService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]account.Account, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.ListAccounts")
	defer span.End()

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return accounts, nil
}

// DeleteAccount removes the depositor rows and the account row as one
// unit. An unknown account number deletes zero rows and still
// succeeds.
func (s *AccountService) DeleteAccount(ctx context.Context, number string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.DeleteAccount")
	defer span.End()

	number = strings.TrimSpace(number)
	if number == "" {
		return fmt.Errorf("%w: account number is required", ErrInvalidInput)
	}

	deleted, err := s.accountRepo.Delete(ctx, number)
	if err != nil {
		return fmt.Errorf("delete account %s: %w", number, err)
	}

	s.logger.InfoContext(ctx, "account deleted",
		"account_number", number,
		"rows", deleted,
	)

	return nil
}
