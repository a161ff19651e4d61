package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

// commandContext returns the command context, or Background when the
// command was invoked without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// contextWithTimeout returns a timeout context rooted in the command context.
// A non-positive duration yields a cancel-only context.
func contextWithTimeout(cmd *cobra.Command, d time.Duration) (context.Context, context.CancelFunc) {
	base := commandContext(cmd)
	if d <= 0 {
		return context.WithCancel(base)
	}
	return context.WithTimeout(base, d)
}
