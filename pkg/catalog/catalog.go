// Package catalog builds an in-memory index of KMyMoney accounts and
// resolves fully-qualified colon-separated account paths.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ledgerkit/kmm2journal/pkg/kmymoney"
)

// ErrMalformedHierarchy is returned when the parent chain of an account is
// cyclic or references a missing account.
var ErrMalformedHierarchy = errors.New("malformed account hierarchy")

// Account is one catalog entry: the raw export record enriched with its
// resolved type and, after ResolveAll, its fully-qualified path.
type Account struct {
	ID           string
	Name         string
	ParentID     string
	Currency     string
	Type         AccountType
	Opened       string
	LastModified string
	Closed       bool

	// Path is the colon-joined fully-qualified name, filled in by ResolveAll.
	Path string
}

// Catalog is a read-only index of accounts keyed by identifier. Child
// identifier lists preserve source-document order.
type Catalog struct {
	accounts map[string]*Account
	children map[string][]string
	roots    []string
	renames  map[string]string
}

// Build indexes the account records of a KMyMoney file. renames maps raw
// account names to canonical display names; nil selects DefaultRenames.
func Build(records []kmymoney.Account, renames map[string]string) *Catalog {
	if renames == nil {
		renames = DefaultRenames()
	}

	c := &Catalog{
		accounts: make(map[string]*Account, len(records)),
		children: make(map[string][]string),
		renames:  renames,
	}
	for _, rec := range records {
		c.accounts[rec.ID] = &Account{
			ID:           rec.ID,
			Name:         rec.Name,
			ParentID:     rec.ParentAccount,
			Currency:     rec.Currency,
			Type:         AccountType(rec.Type),
			Opened:       rec.Opened,
			LastModified: rec.LastModified,
			Closed:       rec.Closed(),
		}
		if rec.ParentAccount == "" {
			c.roots = append(c.roots, rec.ID)
		} else {
			c.children[rec.ParentAccount] = append(c.children[rec.ParentAccount], rec.ID)
		}
	}
	return c
}

// Get returns the account with the given identifier.
func (c *Catalog) Get(id string) (*Account, bool) {
	a, ok := c.accounts[id]
	return a, ok
}

// Roots returns the identifiers of all top-level accounts in document order.
func (c *Catalog) Roots() []string {
	return c.roots
}

// Children returns the child identifiers of an account in document order.
func (c *Catalog) Children(id string) []string {
	return c.children[id]
}

// Len returns the number of accounts in the catalog.
func (c *Catalog) Len() int {
	return len(c.accounts)
}

// DisplayName returns the (possibly renamed) name of an account node.
func (c *Catalog) DisplayName(name string) string {
	if renamed, ok := c.renames[name]; ok {
		return renamed
	}
	return name
}

// ResolvePath walks the parent chain of an account and returns its
// colon-joined fully-qualified path, leaf-to-root composed. The walk is
// iterative with a visited set: a repeated or dangling parent reference
// fails with ErrMalformedHierarchy instead of looping forever. When
// sanitize is set, every path segment has punctuation and spaces replaced
// with a single separator (required by the beancount dialect).
func (c *Catalog) ResolvePath(id string, sanitize bool) (string, error) {
	var segments []string
	visited := make(map[string]bool)

	cur := id
	for {
		if visited[cur] {
			return "", fmt.Errorf("%w: cycle at account %s while resolving %s", ErrMalformedHierarchy, cur, id)
		}
		visited[cur] = true

		acnt, ok := c.accounts[cur]
		if !ok {
			return "", fmt.Errorf("%w: account %s references missing parent %s", ErrMalformedHierarchy, id, cur)
		}

		name := c.DisplayName(acnt.Name)
		if sanitize {
			name = SanitizeName(name)
		}
		segments = append(segments, name)

		if acnt.ParentID == "" {
			break
		}
		cur = acnt.ParentID
	}

	// segments were collected leaf first
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, ":"), nil
}

// ResolveAll computes and stores the fully-qualified path of every account.
// Resolution is idempotent for a given catalog and sanitize setting.
func (c *Catalog) ResolveAll(sanitize bool) error {
	for id, acnt := range c.accounts {
		path, err := c.ResolvePath(id, sanitize)
		if err != nil {
			return err
		}
		acnt.Path = path
	}
	return nil
}

// SanitizeName replaces every punctuation character and space in a path
// segment with a single separator and strips one leading separator.
func SanitizeName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) || r == ' ' {
			return '-'
		}
		return r
	}, name)
	return strings.TrimPrefix(mapped, "-")
}
