package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mrz1836/coinaddr/internal/output"
	"github.com/mrz1836/coinaddr/internal/service/address"
	"github.com/mrz1836/coinaddr/pkg/coinaddress"
	coinerr "github.com/mrz1836/coinaddr/pkg/errors"
)

// resultJSON is the JSON shape of one validated address.
type resultJSON struct {
	Address  string `json:"address"`
	Currency string `json:"currency"`
	Valid    bool   `json:"valid"`
	Version  *int   `json:"version,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Error    string `json:"error,omitempty"`
	Message  string `json:"message,omitempty"`
}

// summaryJSON is the JSON shape of a batch summary.
type summaryJSON struct {
	Total     int            `json:"total"`
	Valid     int            `json:"valid"`
	Invalid   int            `json:"invalid"`
	ByOutcome map[string]int `json:"by_outcome"`
}

func toResultJSON(r address.Result) resultJSON {
	rj := resultJSON{
		Address:  r.Address,
		Currency: r.Currency,
		Valid:    r.Valid(),
	}
	if r.Valid() {
		v := int(r.Version)
		rj.Version = &v
		rj.Kind = r.Kind
		return rj
	}
	rj.Error = coinerr.Code(r.Err)
	rj.Message = r.Err.Error()
	return rj
}

func toResultsJSON(results []address.Result) []resultJSON {
	items := make([]resultJSON, 0, len(results))
	for _, r := range results {
		items = append(items, toResultJSON(r))
	}
	return items
}

func toSummaryJSON(s address.Summary) summaryJSON {
	return summaryJSON{
		Total:     s.Total,
		Valid:     s.Valid,
		Invalid:   s.Invalid,
		ByOutcome: s.ByOutcome,
	}
}

// writeResultsTable renders results as an aligned table.
func writeResultsTable(w io.Writer, results []address.Result) error {
	table := output.NewTable("ADDRESS", "CURRENCY", "VERSION", "KIND", "STATUS")
	for _, r := range results {
		if r.Valid() {
			table.AddRow(displayAddress(r.Address), r.Currency, fmt.Sprintf("%d", r.Version), r.Kind, "valid")
			continue
		}
		table.AddRow(displayAddress(r.Address), r.Currency, "-", "-", r.Err.Error())
	}
	return table.Render(w)
}

// displayAddress quotes addresses that would not survive copy and paste.
func displayAddress(addr string) string {
	if addr == "" || strings.TrimSpace(addr) != addr || strings.ContainsAny(addr, " \t\r\n") {
		return fmt.Sprintf("%q", addr)
	}
	return addr
}

// writeSummaryText prints the tally below a results table.
func writeSummaryText(w io.Writer, s address.Summary) {
	outln(w)
	out(w, "Checked %d %s: %d valid, %d invalid\n", s.Total, pluralize(s.Total, "address", "addresses"), s.Valid, s.Invalid)
	if s.Invalid == 0 {
		return
	}

	outcomes := make([]string, 0, len(s.ByOutcome))
	for outcome := range s.ByOutcome {
		if outcome != "valid" {
			outcomes = append(outcomes, outcome)
		}
	}
	sort.Strings(outcomes)
	for _, outcome := range outcomes {
		out(w, "  %s: %d\n", outcome, s.ByOutcome[outcome])
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// invalidResultsError turns the invalid results of a run into the command
// error. A single address reports its own validation error.
func invalidResultsError(results []address.Result) error {
	var invalid []address.Result
	for _, r := range results {
		if !r.Valid() {
			invalid = append(invalid, r)
		}
	}

	switch {
	case len(invalid) == 0:
		return nil
	case len(results) == 1:
		return coinerr.WithDetails(
			coinerr.FromValidation(invalid[0].Err),
			map[string]string{"address": invalid[0].Address},
		)
	default:
		return coinerr.WithDetails(coinerr.ErrInvalidAddress, map[string]string{
			"invalid": fmt.Sprintf("%d", len(invalid)),
			"total":   fmt.Sprintf("%d", len(results)),
		})
	}
}

// resolveCurrency maps the --currency flag, or the configured default when
// the flag is empty, to a currency. A nil currency means generic validation.
func resolveCurrency(flag string) (*coinaddress.Currency, error) {
	name := flag
	if name == "" && cfg != nil {
		name = cfg.GetDefaultCurrency()
	}

	c, ok := address.ResolveCurrency(name)
	if ok {
		return c, nil
	}

	err := coinerr.WithDetails(coinerr.ErrUnknownCurrency, map[string]string{"currency": name})
	if suggestion := coinaddress.SuggestCurrency(name); suggestion != "" {
		return nil, coinerr.WithSuggestion(err, fmt.Sprintf("did you mean '%s'?", suggestion))
	}
	return nil, coinerr.WithSuggestion(err, "use one of: "+strings.Join(currencyNames(), ", "))
}

// currencyNames lists every accepted --currency value.
func currencyNames() []string {
	names := make([]string, 0, 2*len(coinaddress.Currencies())+1)
	for _, c := range coinaddress.Currencies() {
		names = append(names, c.Name, strings.ToLower(c.Symbol))
	}
	return append(names, "any")
}
