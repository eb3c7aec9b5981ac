package journal

import (
	"fmt"
	"strings"

	"github.com/ledgerkit/kmm2journal/pkg/amount"
	"github.com/ledgerkit/kmm2journal/pkg/kmymoney"
)

// PriceBlock renders the price-history directives, one line per price
// point, grouped per currency pair. Self-pairs (from == to) are skipped.
// Currency-symbol substitution applies to both sides of a pair.
func PriceBlock(pairs []kmymoney.PricePair, d Dialect, opts Options) (string, error) {
	var sb strings.Builder
	sb.WriteString("; Currency prices")

	for _, pair := range pairs {
		if pair.From == pair.To {
			continue
		}

		from, to := pair.From, pair.To
		if opts.UseCurrencySymbols {
			symbols := opts.symbols()
			from = symbols.Symbol(from)
			to = symbols.Symbol(to)
		}

		fmt.Fprintf(&sb, "\n;==== %s to %s =====\n", from, to)
		for _, p := range pair.Prices {
			rate, err := amount.Parse(p.Value)
			if err != nil {
				return "", fmt.Errorf("price %s/%s on %s: %w", pair.From, pair.To, p.Date, err)
			}
			sb.WriteString(d.PriceLine(d.FormatDate(p.Date), from, rate.StringFixed(amountDecimals), to, p.Source))
		}
	}
	return sb.String(), nil
}
