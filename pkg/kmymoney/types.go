// Package kmymoney provides the data model and loader for KMyMoney XML exports.
package kmymoney

import "encoding/xml"

// File is the root of a KMyMoney XML export (KMYMONEY-FILE element).
// All records are immutable snapshots for the duration of one conversion run.
type File struct {
	XMLName       xml.Name      `xml:"KMYMONEY-FILE"`
	KeyValuePairs KeyValuePairs `xml:"KEYVALUEPAIRS"`
	Accounts      []Account     `xml:"ACCOUNTS>ACCOUNT"`
	Payees        []Payee       `xml:"PAYEES>PAYEE"`
	Tags          []Tag         `xml:"TAGS>TAG"`
	Transactions  []Transaction `xml:"TRANSACTIONS>TRANSACTION"`
	PricePairs    []PricePair   `xml:"PRICES>PRICEPAIR"`
}

// KeyValuePairs holds the PAIR children of a KEYVALUEPAIRS element.
type KeyValuePairs struct {
	Pairs []Pair `xml:"PAIR"`
}

// Pair is a single key/value attribute pair.
type Pair struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

// Get returns the value for a key and whether it was present.
func (kv KeyValuePairs) Get(key string) (string, bool) {
	for _, p := range kv.Pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Account is one ACCOUNT record. Type is the raw numeric account-type code
// as defined in kmymoney/mymoney/mymoneyenums.h.
type Account struct {
	ID            string        `xml:"id,attr"`
	Name          string        `xml:"name,attr"`
	ParentAccount string        `xml:"parentaccount,attr"`
	Currency      string        `xml:"currency,attr"`
	Type          int           `xml:"type,attr"`
	Opened        string        `xml:"opened,attr"`
	LastModified  string        `xml:"lastmodified,attr"`
	KeyValuePairs KeyValuePairs `xml:"KEYVALUEPAIRS"`
}

// closedKey marks an account as closed in the KMyMoney UI.
const closedKey = "mm-closed"

// Closed reports whether the account carries the closed marker.
func (a Account) Closed() bool {
	_, ok := a.KeyValuePairs.Get(closedKey)
	return ok
}

// Payee is one PAYEE record.
type Payee struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// Tag is one TAG record.
type Tag struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// Transaction is one TRANSACTION record. Splits keep document order; the
// first split supplies the payee and tag context for two-split transactions.
type Transaction struct {
	ID        string  `xml:"id,attr"`
	PostDate  string  `xml:"postdate,attr"`
	Commodity string  `xml:"commodity,attr"`
	Splits    []Split `xml:"SPLITS>SPLIT"`
}

// Split is one leg of a transaction. Value is denominated in the
// transaction's nominal commodity, Shares in the account's own currency.
// Both are fraction-like strings (e.g. "-50000/100"), parsed by pkg/amount.
type Split struct {
	Account string   `xml:"account,attr"`
	Payee   string   `xml:"payee,attr"`
	Value   string   `xml:"value,attr"`
	Shares  string   `xml:"shares,attr"`
	Price   string   `xml:"price,attr"`
	Memo    string   `xml:"memo,attr"`
	Tags    []TagRef `xml:"TAG"`
}

// TagRef references a Tag from a split.
type TagRef struct {
	ID string `xml:"id,attr"`
}

// PricePair is a PRICEPAIR record: the price history for one currency pair.
type PricePair struct {
	From   string  `xml:"from,attr"`
	To     string  `xml:"to,attr"`
	Prices []Price `xml:"PRICE"`
}

// Price is one price point inside a PRICEPAIR.
type Price struct {
	Date   string `xml:"date,attr"`
	Value  string `xml:"price,attr"`
	Source string `xml:"source,attr"`
}

// baseCurrencyKey is the file-level key naming the operating currency.
const baseCurrencyKey = "kmm-baseCurrency"

// BaseCurrency returns the file's operating currency, if recorded.
func (f *File) BaseCurrency() (string, bool) {
	return f.KeyValuePairs.Get(baseCurrencyKey)
}
