package journal

import (
	"fmt"
	"strings"

	"github.com/ledgerkit/kmm2journal/pkg/catalog"
)

// openingSentinel replaces a missing opening date so every open directive
// predates any possible transaction.
const openingSentinel = "1900-01-01"

// AccountBlock renders one open directive per non-root account and a close
// directive for accounts carrying the closed marker. The tree is walked
// pre-order, children in source-document order.
func AccountBlock(cat *catalog.Catalog, d Dialect) string {
	var sb strings.Builder
	sb.WriteString("; Accounts\n")
	for _, rootID := range cat.Roots() {
		writeAccountTree(&sb, cat, d, rootID, "")
	}
	return sb.String()
}

func writeAccountTree(sb *strings.Builder, cat *catalog.Catalog, d Dialect, id, parentPath string) {
	acnt, ok := cat.Get(id)
	if !ok {
		return
	}

	name := cat.DisplayName(acnt.Name)
	if d.SanitizeAccountNames() {
		name = catalog.SanitizeName(name)
	}

	path := name
	if parentPath != "" {
		path = parentPath + ":" + name

		opened := acnt.Opened
		if opened == "" {
			opened = openingSentinel
		}
		fmt.Fprintf(sb, "%s open  %s  ; %s\n", d.FormatDate(opened), path, acnt.ID)
		if acnt.Closed {
			fmt.Fprintf(sb, "%s close %s  ; %s\n", d.FormatDate(acnt.LastModified), path, acnt.ID)
		}
	}

	for _, childID := range cat.Children(id) {
		writeAccountTree(sb, cat, d, childID, path)
	}
}
