package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/coinaddr/internal/service/address"
)

// validateCmd validates addresses given as arguments.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var validateCmd = &cobra.Command{
	Use:   "validate <address>...",
	Short: "Validate one or more addresses",
	Long: `Validate the base58check checksum of each address and report its version byte.

With --currency btc or ltc, the version byte must also belong to that currency.
The command exits with status 2 when any address is invalid.

Example:
  coinaddr validate 17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem
  coinaddr validate --currency btc 3EktnHQD7RiAE6uzMj2ZifT9YgRrkSgzQX
  coinaddr validate -c ltc LRELGDJyeCPRDXz4Dh1kWorMN9hTBB7CEz -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var validateCurrency string

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateCurrency, "currency", "c", "", "currency to check against: btc, ltc, any (default from config)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	currency, err := resolveCurrency(validateCurrency)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	results := make([]address.Result, 0, len(args))
	for i, addr := range args {
		r := svc.Validate(ctx, address.Request{Address: addr, Currency: currency})
		r.Index = i
		results = append(results, r)
	}

	w := cmd.OutOrStdout()
	if formatter.IsJSON() {
		if len(results) == 1 {
			if err := writeJSON(w, toResultJSON(results[0])); err != nil {
				return err
			}
		} else if err := writeJSON(w, toResultsJSON(results)); err != nil {
			return err
		}
		return invalidResultsError(results)
	}

	if err := writeResultsTable(w, results); err != nil {
		return err
	}
	return invalidResultsError(results)
}
