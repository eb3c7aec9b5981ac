package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/kmm2journal/pkg/catalog"
	"github.com/ledgerkit/kmm2journal/pkg/currency"
	"github.com/ledgerkit/kmm2journal/pkg/kmymoney"
)

// accountsCmd represents the accounts command.
var accountsCmd = &cobra.Command{
	Use:   "accounts <inputfile>",
	Short: "List the resolved chart of accounts",
	Long: `List every account in the export with its fully-qualified path,
currency, type and opening date.

Useful for checking how the hierarchy will render before converting, and
for locating the accounts named in skip notices.

Example:
  kmm2journal accounts finances.kmy.xml`,
	Args: cobra.ExactArgs(1),
	Run:  runAccounts,
}

func runAccounts(cmd *cobra.Command, args []string) {
	inputPath := args[0]

	_, renames, err := currency.LoadMapping(mappingFile)
	exitOnError(err, "failed to load mapping file")

	file, err := kmymoney.Load(inputPath)
	exitOnError(err, "failed to load input file")

	cat := catalog.Build(file.Accounts, renames)
	err = cat.ResolveAll(false)
	exitOnError(err, "failed to resolve account hierarchy")

	type row struct {
		path, currency, kind, opened string
		closed                       bool
	}
	rows := make([]row, 0, cat.Len())
	for _, acc := range file.Accounts {
		entry, ok := cat.Get(acc.ID)
		if !ok {
			continue
		}
		rows = append(rows, row{
			path:     entry.Path,
			currency: entry.Currency,
			kind:     entry.Type.String(),
			opened:   entry.Opened,
			closed:   entry.Closed,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].path < rows[j].path })

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT\tCURRENCY\tTYPE\tOPENED\tCLOSED")
	for _, r := range rows {
		closed := ""
		if r.closed {
			closed = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.path, r.currency, r.kind, r.opened, closed)
	}
	err = w.Flush()
	exitOnError(err, "failed to write account listing")

	slog.Info("listed accounts", "count", len(rows))
}
