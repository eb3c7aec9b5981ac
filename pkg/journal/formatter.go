package journal

import (
	"fmt"
	"strings"

	"github.com/ledgerkit/kmm2journal/pkg/amount"
	"github.com/ledgerkit/kmm2journal/pkg/catalog"
	"github.com/ledgerkit/kmm2journal/pkg/kmymoney"
)

// amountDecimals is the fixed-point precision of printed amounts.
const amountDecimals = 4

// Formatter renders one transaction at a time as a text block. All lookup
// tables are read-only after construction.
type Formatter struct {
	catalog *catalog.Catalog
	payees  map[string]string
	tags    map[string]string
	dialect Dialect
	opts    Options
}

// NewFormatter builds a Formatter over prebuilt lookup tables. The catalog
// must already have its paths resolved for the dialect in use.
func NewFormatter(cat *catalog.Catalog, payees []kmymoney.Payee, tags []kmymoney.Tag, dialect Dialect, opts Options) *Formatter {
	payeeNames := make(map[string]string, len(payees))
	for _, p := range payees {
		payeeNames[p.ID] = p.Name
	}
	tagNames := make(map[string]string, len(tags))
	for _, t := range tags {
		tagNames[t.ID] = t.Name
	}
	return &Formatter{
		catalog: cat,
		payees:  payeeNames,
		tags:    tagNames,
		dialect: dialect,
		opts:    opts,
	}
}

// FormatTransaction renders a transaction header plus one posting line per
// split, ending with a blank line. A transaction with fewer than two splits
// returns an IncompletePostingError; the caller reports it and moves on.
// Unknown account, payee or tag references are fatal lookup errors.
func (f *Formatter) FormatTransaction(txn kmymoney.Transaction) (string, error) {
	date := f.dialect.FormatDate(txn.PostDate)

	if len(txn.Splits) < 2 {
		incomplete := &IncompletePostingError{TransactionID: txn.ID, Date: txn.PostDate}
		if len(txn.Splits) == 1 {
			if acnt, ok := f.catalog.Get(txn.Splits[0].Account); ok {
				incomplete.Account = acnt.Name
			}
		}
		return "", incomplete
	}

	source, ok := f.catalog.Get(txn.Splits[0].Account)
	if !ok {
		return "", &LookupError{Kind: "account", ID: txn.Splits[0].Account, TransactionID: txn.ID}
	}

	payee, err := f.payeeName(txn.Splits[0], source, txn.ID)
	if err != nil {
		return "", err
	}

	// Transaction-level tags come from the first split, but only a plain
	// two-posting transfer/expense pair carries them on the header.
	headerTags := ""
	if len(txn.Splits) == 2 {
		headerTags, err = f.tagComment(txn.Splits[0].Tags, txn.ID)
		if err != nil {
			return "", err
		}
	}

	var sb strings.Builder
	sb.WriteString(f.dialect.TransactionHeader(date, txn.ID, payee, txn.Splits[0].Payee, headerTags))

	for _, spl := range txn.Splits {
		line, err := f.formatPosting(txn, spl, source.Type)
		if err != nil {
			return "", err
		}
		sb.WriteString(line)
	}
	sb.WriteString("\n")
	return sb.String(), nil
}

func (f *Formatter) formatPosting(txn kmymoney.Transaction, spl kmymoney.Split, sourceType catalog.AccountType) (string, error) {
	acnt, ok := f.catalog.Get(spl.Account)
	if !ok {
		return "", &LookupError{Kind: "account", ID: spl.Account, TransactionID: txn.ID}
	}

	value, err := amount.Parse(spl.Value)
	if err != nil {
		return "", fmt.Errorf("transaction %s, account %s: bad value: %w", txn.ID, acnt.Name, err)
	}
	shares, err := amount.Parse(spl.Shares)
	if err != nil {
		return "", fmt.Errorf("transaction %s, account %s: bad shares: %w", txn.ID, acnt.Name, err)
	}

	tagComment, err := f.tagComment(spl.Tags, txn.ID)
	if err != nil {
		return "", err
	}

	res := ResolvePosting(acnt.Currency, txn.Commodity, acnt.Type, sourceType, f.opts)

	var sb strings.Builder
	if res.NeedsConversion {
		fmt.Fprintf(&sb, "   %s  %s %s @@ %s %s%s",
			acnt.Path,
			shares.StringFixed(amountDecimals), res.Commodity,
			value.Abs().StringFixed(amountDecimals), res.ConversionCommodity,
			tagComment)
	} else {
		fmt.Fprintf(&sb, "   %s  %s %s%s",
			acnt.Path,
			value.StringFixed(amountDecimals), res.Commodity,
			tagComment)
	}

	if memo := f.escapeMemo(spl.Memo); memo != "" {
		fmt.Fprintf(&sb, "   ; %s\n", memo)
	} else {
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// payeeName resolves the payee of a transaction from its first split. An
// empty payee id is the documented "no payee" case; an equity source
// account then lends its own name so opening-balance entries stay readable.
func (f *Formatter) payeeName(first kmymoney.Split, source *catalog.Account, txnID string) (string, error) {
	if first.Payee == "" {
		if source.Type == catalog.Equity {
			return f.dialect.EscapeText(source.Name), nil
		}
		return "", nil
	}
	name, ok := f.payees[first.Payee]
	if !ok {
		return "", &LookupError{Kind: "payee", ID: first.Payee, TransactionID: txnID}
	}
	return f.dialect.EscapeText(name), nil
}

// tagComment renders tag references as a trailing comment, hledger tag
// syntax (a trailing colon per tag name).
func (f *Formatter) tagComment(refs []kmymoney.TagRef, txnID string) (string, error) {
	if len(refs) == 0 {
		return "", nil
	}
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		name, ok := f.tags[ref.ID]
		if !ok {
			return "", &LookupError{Kind: "tag", ID: ref.ID, TransactionID: txnID}
		}
		names = append(names, name+":")
	}
	return " ; " + strings.Join(names, ", "), nil
}

// escapeMemo keeps a memo on a single well-formed line.
func (f *Formatter) escapeMemo(memo string) string {
	escaped := f.dialect.EscapeText(memo)
	return strings.ReplaceAll(escaped, "\n", `\n`)
}
