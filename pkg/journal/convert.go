package journal

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/ledgerkit/kmm2journal/pkg/catalog"
	"github.com/ledgerkit/kmm2journal/pkg/kmymoney"
)

// progressInterval is the number of transactions between progress lines.
const progressInterval = 100

// Converter runs one single-pass conversion of a loaded KMyMoney file.
type Converter struct {
	dialect Dialect
	opts    Options
	logger  *slog.Logger
}

// New creates a Converter for a dialect selected at startup.
func New(dialect Dialect, opts Options) *Converter {
	return &Converter{
		dialect: dialect,
		opts:    opts,
		logger:  slog.Default(),
	}
}

// Dialect returns the output dialect the converter was built with.
func (c *Converter) Dialect() Dialect {
	return c.dialect
}

// Convert assembles the complete output artifact: file header, account
// block, transaction block and price block. Transactions lacking a second
// posting are logged and omitted; hierarchy, number and lookup problems
// abort the run so no partial file is ever written.
func (c *Converter) Convert(f *kmymoney.File) (string, error) {
	cat := catalog.Build(f.Accounts, c.opts.Renames)
	if err := cat.ResolveAll(c.dialect.SanitizeAccountNames()); err != nil {
		return "", err
	}

	formatter := NewFormatter(cat, f.Payees, f.Tags, c.dialect, c.opts)

	baseCurrency, _ := f.BaseCurrency()
	header := c.dialect.FileHeader(baseCurrency)

	accountLines := ""
	if c.dialect.EmitsAccountBlock() {
		accountLines = AccountBlock(cat, c.dialect)
	}

	var txns strings.Builder
	txns.WriteString("; Transactions\n")
	total := len(f.Transactions)
	skipped := 0
	for i, txn := range f.Transactions {
		if (i+1)%progressInterval == 0 || i == total-1 {
			c.logger.Info("processing transactions", "done", i+1, "total", total)
		}

		block, err := formatter.FormatTransaction(txn)
		if err != nil {
			var incomplete *IncompletePostingError
			if errors.As(err, &incomplete) {
				c.logger.Warn("skipping transaction without destination posting",
					"transaction", incomplete.TransactionID,
					"date", incomplete.Date,
					"account", incomplete.Account,
				)
				skipped++
				continue
			}
			return "", err
		}
		txns.WriteString(block)
	}
	if skipped > 0 {
		c.logger.Warn("transactions omitted from output", "count", skipped)
	}

	priceLines, err := PriceBlock(f.PricePairs, c.dialect, c.opts)
	if err != nil {
		return "", err
	}

	return header + "\n" + accountLines + "\n" + txns.String() + "\n" + priceLines, nil
}
