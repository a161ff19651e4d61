package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	coinerr "github.com/mrz1836/coinaddr/pkg/errors"
)

// ErrorOutput represents a structured error for JSON output.
type ErrorOutput struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	ExitCode   int               `json:"exit_code"`
}

// FormatError writes err to w. Address validation errors are rendered
// through their structured counterpart.
func FormatError(w io.Writer, err error, format Format) error {
	if err == nil {
		return nil
	}

	err = coinerr.FromValidation(err)

	if format == FormatJSON {
		return WriteJSON(w, ErrorOutput{Error: detailOf(err)})
	}
	return formatErrorText(w, err)
}

func detailOf(err error) ErrorDetail {
	var ce *coinerr.CoinError
	if errors.As(err, &ce) {
		return ErrorDetail{
			Code:       ce.Code,
			Message:    ce.Message,
			Details:    ce.Details,
			Suggestion: ce.Suggestion,
			ExitCode:   ce.ExitCode,
		}
	}
	return ErrorDetail{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		ExitCode: coinerr.ExitGeneral,
	}
}

func formatErrorText(w io.Writer, err error) error {
	var sb strings.Builder
	d := detailOf(err)

	sb.WriteString(fmt.Sprintf("Error: %s\n", d.Message))

	if len(d.Details) > 0 {
		keys := make([]string, 0, len(d.Details))
		for k := range d.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, d.Details[k]))
		}
	}

	if d.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\nSuggestion: %s\n", d.Suggestion))
	}

	_, writeErr := io.WriteString(w, sb.String())
	return writeErr
}

// FormatSuccess formats a success message.
func FormatSuccess(w io.Writer, message string, format Format) error {
	if format == FormatJSON {
		return WriteJSON(w, map[string]string{"status": "success", "message": message})
	}
	_, err := fmt.Fprintln(w, message)
	return err
}
