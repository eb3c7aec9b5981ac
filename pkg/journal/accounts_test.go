package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/kmm2journal/pkg/catalog"
	"github.com/ledgerkit/kmm2journal/pkg/kmymoney"
)

func TestAccountBlock(t *testing.T) {
	records := []kmymoney.Account{
		{ID: "A000001", Name: "Asset", ParentAccount: "", Currency: "USD", Type: int(catalog.Asset)},
		{ID: "A000002", Name: "Checking Account", ParentAccount: "A000001", Currency: "USD", Type: int(catalog.Checkings), Opened: "2019-03-01"},
		{ID: "A000003", Name: "Wallet", ParentAccount: "A000001", Currency: "USD", Type: int(catalog.Cash), LastModified: "2022-11-30",
			KeyValuePairs: kmymoney.KeyValuePairs{Pairs: []kmymoney.Pair{{Key: "mm-closed", Value: "yes"}}}},
		{ID: "E000001", Name: "Expense", ParentAccount: "", Currency: "USD", Type: int(catalog.Expense)},
		{ID: "E000002", Name: "Groceries", ParentAccount: "E000001", Currency: "USD", Type: int(catalog.Expense), Opened: "2019-03-02"},
	}
	cat := catalog.Build(records, nil)
	require.NoError(t, cat.ResolveAll(true))

	got := AccountBlock(cat, Beancount{})

	// Pre-order, document order; roots emit no directive themselves; a
	// missing opening date falls back to the sentinel; names sanitized.
	want := "; Accounts\n" +
		"2019-03-01 open  Assets:Checking-Account  ; A000002\n" +
		"1900-01-01 open  Assets:Wallet  ; A000003\n" +
		"2022-11-30 close Assets:Wallet  ; A000003\n" +
		"2019-03-02 open  Expenses:Groceries  ; E000002\n"
	assert.Equal(t, want, got)
}

func TestAccountBlockDeepNesting(t *testing.T) {
	records := []kmymoney.Account{
		{ID: "R", Name: "Asset", ParentAccount: ""},
		{ID: "M", Name: "Bank", ParentAccount: "R", Opened: "2020-01-01"},
		{ID: "L", Name: "Joint", ParentAccount: "M", Opened: "2020-06-01"},
	}
	cat := catalog.Build(records, nil)
	require.NoError(t, cat.ResolveAll(true))

	got := AccountBlock(cat, Beancount{})
	assert.Contains(t, got, "2020-01-01 open  Assets:Bank  ; M\n")
	assert.Contains(t, got, "2020-06-01 open  Assets:Bank:Joint  ; L\n")
}
