package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/coinaddr/internal/output"
	"github.com/mrz1836/coinaddr/pkg/coinaddress"
)

// currenciesCmd lists the supported currencies.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List supported currencies and version bytes",
	Long: `List every currency accepted by --currency together with the version
bytes it accepts.

Example:
  coinaddr currencies
  coinaddr currencies -o json`,
	Args: cobra.NoArgs,
	RunE: runCurrencies,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(currenciesCmd)
}

type versionJSON struct {
	Byte int    `json:"byte"`
	Kind string `json:"kind"`
}

type currencyJSON struct {
	Name     string        `json:"name"`
	Symbol   string        `json:"symbol"`
	Versions []versionJSON `json:"versions"`
}

func runCurrencies(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if formatter.IsJSON() {
		return formatCurrenciesJSON(w, coinaddress.Currencies())
	}
	return formatCurrenciesText(w, coinaddress.Currencies())
}

func formatCurrenciesJSON(w io.Writer, currencies []*coinaddress.Currency) error {
	items := make([]currencyJSON, 0, len(currencies))
	for _, c := range currencies {
		item := currencyJSON{Name: c.Name, Symbol: c.Symbol}
		for _, v := range c.Versions() {
			item.Versions = append(item.Versions, versionJSON{Byte: int(v.Byte), Kind: v.Kind})
		}
		items = append(items, item)
	}
	return writeJSON(w, items)
}

func formatCurrenciesText(w io.Writer, currencies []*coinaddress.Currency) error {
	table := output.NewTable("NAME", "SYMBOL", "VERSION", "KIND")
	for _, c := range currencies {
		for _, v := range c.Versions() {
			table.AddRow(c.Name, c.Symbol, fmt.Sprintf("%d", v.Byte), v.Kind)
		}
	}
	return table.Render(w)
}
