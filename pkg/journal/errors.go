package journal

import "fmt"

// IncompletePostingError reports a transaction that lacks a second posting.
// It is recoverable: the caller logs it and skips the transaction.
type IncompletePostingError struct {
	TransactionID string
	Date          string
	Account       string
}

func (e *IncompletePostingError) Error() string {
	return fmt.Sprintf("transaction %s (%s): no destination posting for account %q",
		e.TransactionID, e.Date, e.Account)
}

// LookupError reports a referenced identifier that is absent from its table.
// It indicates an inconsistent export and is fatal for the run.
type LookupError struct {
	Kind          string // "account", "payee" or "tag"
	ID            string
	TransactionID string
}

func (e *LookupError) Error() string {
	if e.TransactionID == "" {
		return fmt.Sprintf("unknown %s id %q", e.Kind, e.ID)
	}
	return fmt.Sprintf("transaction %s references unknown %s id %q", e.TransactionID, e.Kind, e.ID)
}
