package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/kmm2journal/pkg/kmymoney"
)

func testAccounts() []kmymoney.Account {
	return []kmymoney.Account{
		{ID: "A000001", Name: "Asset", ParentAccount: "", Currency: "USD", Type: int(Asset)},
		{ID: "A000002", Name: "Checking", ParentAccount: "A000001", Currency: "USD", Type: int(Checkings), Opened: "2019-03-01"},
		{ID: "A000003", Name: "Expense", ParentAccount: "", Currency: "USD", Type: int(Expense)},
		{ID: "A000004", Name: "Groceries", ParentAccount: "A000003", Currency: "USD", Type: int(Expense)},
		{ID: "A000005", Name: "Farmers' Market", ParentAccount: "A000004", Currency: "USD", Type: int(Expense)},
	}
}

func TestResolvePath(t *testing.T) {
	cat := Build(testAccounts(), nil)

	tests := []struct {
		name     string
		id       string
		sanitize bool
		want     string
	}{
		{"top-level rename", "A000001", false, "Assets"},
		{"two levels", "A000002", false, "Assets:Checking"},
		{"expense rename", "A000004", false, "Expenses:Groceries"},
		{"raw name keeps punctuation", "A000005", false, "Expenses:Groceries:Farmers' Market"},
		{"sanitized name", "A000005", true, "Expenses:Groceries:Farmers--Market"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cat.ResolvePath(tt.id, tt.sanitize)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Idempotent: resolving again yields the same path.
			again, err := cat.ResolvePath(tt.id, tt.sanitize)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestResolvePathDepth(t *testing.T) {
	cat := Build(testAccounts(), nil)

	depths := map[string]int{
		"A000001": 1,
		"A000002": 2,
		"A000004": 2,
		"A000005": 3,
	}
	for id, depth := range depths {
		path, err := cat.ResolvePath(id, false)
		require.NoError(t, err)
		assert.Len(t, strings.Split(path, ":"), depth, "account %s", id)
	}
}

func TestResolvePathCycle(t *testing.T) {
	records := []kmymoney.Account{
		{ID: "A1", Name: "One", ParentAccount: "A2"},
		{ID: "A2", Name: "Two", ParentAccount: "A1"},
	}
	cat := Build(records, nil)

	_, err := cat.ResolvePath("A1", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedHierarchy)
}

func TestResolvePathDanglingParent(t *testing.T) {
	records := []kmymoney.Account{
		{ID: "A1", Name: "Orphan", ParentAccount: "A404"},
	}
	cat := Build(records, nil)

	_, err := cat.ResolvePath("A1", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedHierarchy)
}

func TestResolveAll(t *testing.T) {
	cat := Build(testAccounts(), nil)
	require.NoError(t, cat.ResolveAll(false))

	checking, ok := cat.Get("A000002")
	require.True(t, ok)
	assert.Equal(t, "Assets:Checking", checking.Path)
}

func TestChildrenKeepDocumentOrder(t *testing.T) {
	records := []kmymoney.Account{
		{ID: "R", Name: "Asset", ParentAccount: ""},
		{ID: "C3", Name: "Third", ParentAccount: "R"},
		{ID: "C1", Name: "First", ParentAccount: "R"},
		{ID: "C2", Name: "Second", ParentAccount: "R"},
	}
	cat := Build(records, nil)

	assert.Equal(t, []string{"R"}, cat.Roots())
	assert.Equal(t, []string{"C3", "C1", "C2"}, cat.Children("R"))
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Groceries", "Groceries"},
		{"Farmers' Market", "Farmers--Market"},
		{"(Opening Balances)", "Opening-Balances-"},
		{"A/C 12", "A-C-12"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeName(tt.input), "input %q", tt.input)
	}
}

func TestAccountTypeClassification(t *testing.T) {
	money := []AccountType{Checkings, Savings, Cash, CreditCard, Asset, Liability, Equity}
	for _, typ := range money {
		assert.True(t, typ.IsMoney(), "%s should be a money type", typ)
		assert.False(t, typ.IsCategory(), "%s should not be a category", typ)
	}

	categories := []AccountType{Income, Expense}
	for _, typ := range categories {
		assert.True(t, typ.IsCategory(), "%s should be a category", typ)
		assert.False(t, typ.IsMoney(), "%s should not be a money type", typ)
	}

	neither := []AccountType{Unknown, Loan, Investment, Stock, Currency}
	for _, typ := range neither {
		assert.False(t, typ.IsMoney(), "%s", typ)
		assert.False(t, typ.IsCategory(), "%s", typ)
	}
}
