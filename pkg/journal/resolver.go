package journal

import (
	"github.com/ledgerkit/kmm2journal/pkg/catalog"
	"github.com/ledgerkit/kmm2journal/pkg/currency"
)

// Options controls the conversion behavior shared by the resolver, the
// formatter and the block emitters.
type Options struct {
	// KeepDestinationCommodity keeps a category posting denominated in its
	// own account currency (with a conversion annotation) instead of
	// normalizing it to the transaction commodity. Default true.
	KeepDestinationCommodity bool
	// UseCurrencySymbols replaces currency codes with glyphs from Symbols
	// before any comparison or rendering.
	UseCurrencySymbols bool
	// Symbols is the code-to-glyph table; nil selects the defaults.
	Symbols currency.Table
	// Renames maps raw account names to canonical display names; nil
	// selects the defaults.
	Renames map[string]string
}

func (o Options) symbols() currency.Table {
	if o.Symbols == nil {
		return currency.DefaultTable()
	}
	return o.Symbols
}

// Resolution is the per-posting decision of the commodity resolver.
type Resolution struct {
	// Commodity is printed after the amount.
	Commodity string
	// UseShares selects the share quantity (account currency) over the
	// value amount (transaction commodity) as the printed amount.
	UseShares bool
	// NeedsConversion adds an "@@ <abs value> <ConversionCommodity>"
	// annotation after the amount.
	NeedsConversion     bool
	ConversionCommodity string
}

// ResolvePosting decides which commodity a posting is denominated in and
// whether a conversion annotation is required.
//
// The comparison baseline is the transaction-level nominal commodity, which
// generalizes to multi-posting transactions. In order:
//
//  1. posting currency equals the transaction commodity: print the value
//     amount in the transaction commodity, no annotation;
//  2. currencies differ, KeepDestinationCommodity is off, the source leg is
//     a money account and this leg is a category: force the transaction
//     commodity so categorization carries no exchange noise;
//  3. otherwise: print the share quantity in the posting's own currency
//     with a total-cost annotation in the transaction commodity.
//
// When UseCurrencySymbols is set, both codes are substituted before the
// equality test, never after.
func ResolvePosting(postingCurrency, txnCommodity string, postingType, sourceType catalog.AccountType, opts Options) Resolution {
	if opts.UseCurrencySymbols {
		symbols := opts.symbols()
		postingCurrency = symbols.Symbol(postingCurrency)
		txnCommodity = symbols.Symbol(txnCommodity)
	}

	sameCurrency := postingCurrency == txnCommodity
	normalize := !sameCurrency &&
		!opts.KeepDestinationCommodity &&
		sourceType.IsMoney() &&
		postingType.IsCategory()

	if sameCurrency || normalize {
		return Resolution{Commodity: txnCommodity}
	}
	return Resolution{
		Commodity:           postingCurrency,
		UseShares:           true,
		NeedsConversion:     true,
		ConversionCommodity: txnCommodity,
	}
}
