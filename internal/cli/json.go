package cli

import (
	"io"

	"github.com/mrz1836/coinaddr/internal/output"
)

// writeJSON encodes the value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	return output.WriteJSON(w, v)
}
