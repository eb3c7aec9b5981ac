// Package journal converts a loaded KMyMoney file into plain-text
// accounting output, in either the beancount or the hledger dialect.
package journal

import (
	"fmt"
	"strings"
)

// Dialect captures the differences between the two output formats. One
// implementation is selected at startup; the formatter and emitters never
// branch on the dialect themselves.
type Dialect interface {
	// Name is the dialect identifier used in logs and flag values.
	Name() string
	// Extension is the default output file extension, dot included.
	Extension() string
	// FormatDate reformats an ISO date (YYYY-MM-DD) for this dialect.
	FormatDate(date string) string
	// SanitizeAccountNames reports whether path segments must be reduced
	// to identifier-safe names.
	SanitizeAccountNames() bool
	// EmitsAccountBlock reports whether open/close directives are emitted.
	EmitsAccountBlock() bool
	// FileHeader returns the option/plugin preamble, empty when none.
	FileHeader(baseCurrency string) string
	// TransactionHeader renders the header line(s) of one transaction.
	TransactionHeader(date, id, payee, payeeID, tagComment string) string
	// EscapeText makes a payee name or memo safe inside this dialect's
	// quoting rules.
	EscapeText(s string) string
	// PriceLine renders one price-history directive.
	PriceLine(date, from, rate, to, source string) string
}

// Beancount is the dialect with open/close directives, quoted payee
// strings and an option/plugin preamble.
type Beancount struct{}

func (Beancount) Name() string               { return "beancount" }
func (Beancount) Extension() string          { return ".beancount" }
func (Beancount) FormatDate(date string) string { return date }
func (Beancount) SanitizeAccountNames() bool { return true }
func (Beancount) EmitsAccountBlock() bool    { return true }

func (Beancount) FileHeader(baseCurrency string) string {
	var sb strings.Builder
	sb.WriteString("option \"title\" \"Personal Finances\"\n")
	if baseCurrency != "" {
		fmt.Fprintf(&sb, "option \"operating_currency\" %q\n", baseCurrency)
	}
	sb.WriteString("plugin \"beancount.plugins.implicit_prices\"\n")
	return sb.String()
}

func (Beancount) TransactionHeader(date, id, payee, payeeID, tagComment string) string {
	return fmt.Sprintf("; %s\n%s * %q ; %s;%s\n", id, date, payee, payeeID, tagComment)
}

// EscapeText swaps double quotes for single quotes so the payee and memo
// stay inside one quoted string.
func (Beancount) EscapeText(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}

func (Beancount) PriceLine(date, from, rate, to, source string) string {
	return fmt.Sprintf("%s price %s %s %s ; source: %s\n", date, from, rate, to, source)
}

// HLedger is the journal dialect: raw display names, slash-separated
// dates, unquoted transaction id in parentheses, no account block.
type HLedger struct{}

func (HLedger) Name() string      { return "hledger" }
func (HLedger) Extension() string { return ".journal" }

func (HLedger) FormatDate(date string) string {
	return strings.ReplaceAll(date, "-", "/")
}

func (HLedger) SanitizeAccountNames() bool { return false }
func (HLedger) EmitsAccountBlock() bool    { return false }

func (HLedger) FileHeader(string) string { return "" }

func (HLedger) TransactionHeader(date, id, payee, payeeID, tagComment string) string {
	header := fmt.Sprintf("%s (%s) %s", date, id, payee)
	return strings.TrimRight(header, " ") + tagComment + "\n"
}

func (HLedger) EscapeText(s string) string { return s }

func (HLedger) PriceLine(date, from, rate, to, source string) string {
	return fmt.Sprintf("P %s %s %s %s ; source: %s\n", date, from, rate, to, source)
}

// ForName returns the dialect registered under name.
func ForName(name string) (Dialect, error) {
	switch name {
	case "beancount":
		return Beancount{}, nil
	case "hledger", "":
		return HLedger{}, nil
	}
	return nil, fmt.Errorf("unknown dialect %q (want beancount or hledger)", name)
}
