package output

import (
	"fmt"
	"io"
)

// Warnf writes a formatted warning line with a warning prefix.
//
//nolint:errcheck // Diagnostic output is best effort
func Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "⚠️  "+fmt.Sprintf(format, args...))
}

// Successf writes a formatted success line with a success prefix.
//
//nolint:errcheck // Diagnostic output is best effort
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "✅ "+fmt.Sprintf(format, args...))
}
