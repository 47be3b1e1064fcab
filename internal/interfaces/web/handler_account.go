package web

import (
	"net/http"
	"strings"

	"github.com/ruimonteiro/playerdesk/internal/domain/account"
)

type accountsIndexData struct {
	Title    string
	Accounts []account.Account
}

func (h *Handler) AccountIndex(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.AccountIndex")
	defer span.End()

	accounts, err := h.accountService.ListAccounts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list accounts failed", "error", err)
		h.renderError(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, http.StatusOK, "accounts_index", accountsIndexData{
		Title:    "Accounts",
		Accounts: accounts,
	})
}

// AccountDelete removes the account and its depositor rows, then
// returns to the account list. Unknown numbers are a quiet no-op.
func (h *Handler) AccountDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.AccountDelete")
	defer span.End()

	number := strings.TrimSpace(r.PathValue("accountNumber"))
	if err := h.accountService.DeleteAccount(ctx, number); err != nil {
		h.logger.ErrorContext(ctx, "delete account failed", "account_number", number, "error", err)
		h.renderError(ctx, w, err)
		return
	}

	http.Redirect(w, r, "/accounts", http.StatusSeeOther)
}
