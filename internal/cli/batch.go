package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/coinaddr/internal/config"
	"github.com/mrz1836/coinaddr/internal/metrics"
	"github.com/mrz1836/coinaddr/internal/service/address"
	coinerr "github.com/mrz1836/coinaddr/pkg/errors"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// batchCmd validates addresses read from a file or stdin.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var batchCmd = &cobra.Command{
	Use:   "batch [file|-]",
	Short: "Validate addresses from a file or stdin",
	Long: `Validate addresses read one per line from a file, or from stdin when the
file is "-" or omitted.

Empty lines and lines starting with '#' are skipped. Every other line is
validated exactly as written, so stray whitespace makes an address invalid
and a whitespace-only line is reported as invalid.
Addresses are checked concurrently; results keep the input order.

Example:
  coinaddr batch addresses.txt
  coinaddr batch addresses.txt --currency btc --workers 16
  cat addresses.txt | coinaddr batch - -o json
  coinaddr batch addresses.txt --metrics-file /var/lib/node_exporter/coinaddr.prom`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	batchCurrency string
	batchWorkers  int
	batchTimeout  time.Duration
	batchMetrics  string
)

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchCurrency, "currency", "c", "", "currency to check against: btc, ltc, any (default from config)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "concurrent validations (default from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 0, "abort the batch after this duration (0 = no limit)")
	batchCmd.Flags().StringVar(&batchMetrics, "metrics-file", "", "write validation metrics in Prometheus text format to this file")
}

// batchOutput is the JSON shape of a batch run.
type batchOutput struct {
	Results []resultJSON `json:"results"`
	Summary summaryJSON  `json:"summary"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	currency, err := resolveCurrency(batchCurrency)
	if err != nil {
		return err
	}

	service, err := batchService()
	if err != nil {
		return err
	}

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	addrs, err := readAddressSource(cmd, source)
	if err != nil {
		return err
	}
	if len(addrs) == 0 {
		return coinerr.WithSuggestion(
			coinerr.WithDetails(coinerr.ErrInvalidInput, map[string]string{"source": source}),
			"provide one address per line",
		)
	}

	ctx, cancel := contextWithTimeout(cmd, batchTimeout)
	defer cancel()

	results, err := service.ValidateBatch(ctx, address.BatchRequest{Addresses: addrs, Currency: currency})
	if err != nil {
		return coinerr.Wrap(err, "batch validation aborted")
	}
	summary := address.Summarize(results)

	if batchMetrics != "" {
		if err := metrics.Global.WriteTextfile(batchMetrics); err != nil {
			return coinerr.Wrap(err, "writing metrics to %s", batchMetrics)
		}
	}

	w := cmd.OutOrStdout()
	if formatter.IsJSON() {
		if err := writeJSON(w, batchOutput{
			Results: toResultsJSON(results),
			Summary: toSummaryJSON(summary),
		}); err != nil {
			return err
		}
		return invalidResultsError(results)
	}

	if err := writeResultsTable(w, results); err != nil {
		return err
	}
	writeSummaryText(w, summary)
	if cfg != nil && cfg.IsVerbose() {
		snap := metrics.Global.Snapshot()
		out(w, "Average check time: %.1fµs over %d checks\n", snap.AvgDurationMicros(), snap.ValidationsTotal)
	}

	return invalidResultsError(results)
}

// batchService returns the global service, or a new one when --workers overrides it.
func batchService() (*address.Service, error) {
	if batchWorkers == 0 {
		return svc, nil
	}
	if batchWorkers < 0 || batchWorkers > config.MaxWorkers {
		return nil, coinerr.WithDetails(coinerr.ErrInvalidValue, map[string]string{
			"flag":  "workers",
			"value": fmt.Sprintf("%d", batchWorkers),
			"valid": fmt.Sprintf("1 to %d", config.MaxWorkers),
		})
	}
	return address.NewService(
		address.WithLogger(logger),
		address.WithMetrics(metrics.Global),
		address.WithWorkers(batchWorkers),
	), nil
}

// readAddressSource reads addresses from a file, or from the command's
// stdin when source is "-".
func readAddressSource(cmd *cobra.Command, source string) ([]string, error) {
	if source == "-" {
		return readAddresses(cmd.InOrStdin())
	}

	// #nosec G304 -- path is supplied by the user on the command line
	f, err := os.Open(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, coinerr.WithDetails(coinerr.ErrNotFound, map[string]string{"path": source})
		}
		return nil, coinerr.Wrap(err, "opening %s", source)
	}
	defer func() { _ = f.Close() }()

	return readAddresses(f)
}

// readAddresses returns one address per line. Empty lines and lines
// starting with '#' are skipped; other lines, whitespace-only ones
// included, are kept verbatim apart from the line terminator.
func readAddresses(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var addrs []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addrs = append(addrs, line)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, coinerr.WithDetails(coinerr.ErrInvalidInput, map[string]string{
				"reason": fmt.Sprintf("line longer than %d bytes", maxLineBytes),
			})
		}
		return nil, coinerr.Wrap(err, "reading addresses")
	}

	return addrs, nil
}
