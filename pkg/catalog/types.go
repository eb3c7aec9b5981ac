package catalog

// AccountType is the numeric account-type code used by KMyMoney.
//
// The values mirror kmymoney/mymoney/mymoneyenums.h; the XML export stores
// them as plain integers on each ACCOUNT record.
type AccountType int

const (
	Unknown        AccountType = iota // for error handling
	Checkings                         // standard checking account
	Savings                           // typical savings account
	Cash                              // shoe-box or pillowcase stuffed with cash
	CreditCard                        // credit card accounts
	Loan                              // loan and mortgage accounts (liability)
	CertificateDep                    // certificates of deposit
	Investment                        // investment account
	MoneyMarket                       // money market account
	Asset                             // generic asset account
	Liability                         // generic liability account
	Currency                          // currency trading account
	Income                            // income account
	Expense                           // expense account
	AssetLoan                         // loan that is an asset of the owner
	Stock                             // security sub-account of an investment
	Equity                            // equity account, e.g. opening/closing balance
)

var typeNames = map[AccountType]string{
	Unknown:        "Unknown",
	Checkings:      "Checkings",
	Savings:        "Savings",
	Cash:           "Cash",
	CreditCard:     "CreditCard",
	Loan:           "Loan",
	CertificateDep: "CertificateDep",
	Investment:     "Investment",
	MoneyMarket:    "MoneyMarket",
	Asset:          "Asset",
	Liability:      "Liability",
	Currency:       "Currency",
	Income:         "Income",
	Expense:        "Expense",
	AssetLoan:      "AssetLoan",
	Stock:          "Stock",
	Equity:         "Equity",
}

func (t AccountType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// IsMoney reports whether the type holds currency directly.
func (t AccountType) IsMoney() bool {
	switch t {
	case Checkings, Savings, Cash, CreditCard, Asset, Liability, Equity:
		return true
	}
	return false
}

// IsCategory reports whether the type is an income or expense category.
func (t AccountType) IsCategory() bool {
	return t == Income || t == Expense
}

// DefaultRenames maps raw top-level account names to their canonical display
// names. Applied at any depth where a node's raw name matches.
func DefaultRenames() map[string]string {
	return map[string]string{
		"Asset":     "Assets",
		"Liability": "Liabilities",
		"Expense":   "Expenses",
	}
}
