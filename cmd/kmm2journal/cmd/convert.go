package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/kmm2journal/pkg/config"
	"github.com/ledgerkit/kmm2journal/pkg/currency"
	"github.com/ledgerkit/kmm2journal/pkg/journal"
	"github.com/ledgerkit/kmm2journal/pkg/kmymoney"
)

var (
	useBeancount       bool
	replaceDestination bool
	useSymbols         bool
	outputPath         string
)

// convertCmd represents the convert command.
var convertCmd = &cobra.Command{
	Use:   "convert <inputfile>",
	Short: "Convert a KMyMoney XML export to a journal file",
	Long: `Convert a KMyMoney XML export to a plain-text accounting journal.

This command:
1. Loads the XML export into memory
2. Builds the account, payee and tag lookup tables
3. Re-expresses every transaction as posting lines, resolving the
   commodity of each posting against the transaction commodity
4. Writes one output file (hledger .journal or beancount .beancount)

Transactions without a destination posting are logged and omitted; the
run continues. Hierarchy or lookup problems abort the run before any
output is written.

Example:
  kmm2journal convert finances.kmy.xml
  kmm2journal convert -b -s finances.kmy.xml
  kmm2journal convert -r -o out.journal finances.kmy.xml`,
	Args: cobra.ExactArgs(1),
	Run:  runConvert,
}

func init() {
	// Flags
	convertCmd.Flags().BoolVarP(&useBeancount, "beancount", "b", false, "use beancount output format (default is hledger)")
	convertCmd.Flags().BoolVarP(&replaceDestination, "replace-destination-commodity", "r", false,
		"replace destination account commodity with the transaction commodity; no conversion annotation is emitted")
	convertCmd.Flags().BoolVarP(&useSymbols, "use-currency-symbols", "s", false,
		"replace ISO 4217 currency codes with unicode symbols (experimental)")
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default is <inputfile> plus dialect extension)")
}

func runConvert(cmd *cobra.Command, args []string) {
	inputPath := args[0]

	// Load configuration defaults; flags override.
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	dialectName := cfg.Convert.Dialect
	if cmd.Flags().Changed("beancount") {
		dialectName = "hledger"
		if useBeancount {
			dialectName = "beancount"
		}
	}
	dialect, err := journal.ForName(dialectName)
	exitOnError(err, "invalid dialect")

	keepDestination := !cfg.Convert.ReplaceDestinationCommodity
	if cmd.Flags().Changed("replace-destination-commodity") {
		keepDestination = !replaceDestination
	}
	symbolsEnabled := cfg.Convert.UseCurrencySymbols
	if cmd.Flags().Changed("use-currency-symbols") {
		symbolsEnabled = useSymbols
	}

	mappingPath := mappingFile
	if mappingPath == "" {
		mappingPath = cfg.Convert.MappingFile
	}
	symbols, renames, err := currency.LoadMapping(mappingPath)
	exitOnError(err, "failed to load mapping file")

	slog.Info("starting conversion",
		"input", inputPath,
		"dialect", dialect.Name(),
		"keep_destination_commodity", keepDestination,
		"currency_symbols", symbolsEnabled,
	)

	file, err := kmymoney.Load(inputPath)
	exitOnError(err, "failed to load input file")
	slog.Info("loaded input file",
		"accounts", len(file.Accounts),
		"payees", len(file.Payees),
		"tags", len(file.Tags),
		"transactions", len(file.Transactions),
		"price_pairs", len(file.PricePairs),
	)

	converter := journal.New(dialect, journal.Options{
		KeepDestinationCommodity: keepDestination,
		UseCurrencySymbols:       symbolsEnabled,
		Symbols:                  symbols,
		Renames:                  renames,
	})

	output, err := converter.Convert(file)
	exitOnError(err, "conversion failed")

	outPath := outputPath
	if outPath == "" {
		outPath = inputPath + dialect.Extension()
	}

	// One complete artifact or nothing: the text is assembled fully in
	// memory before the file is touched.
	err = os.WriteFile(outPath, []byte(output), 0644)
	exitOnError(err, "failed to write output file")

	slog.Info("conversion completed", "output", outPath)
}
