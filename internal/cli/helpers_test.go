package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mrz1836/coinaddr/internal/config"
	"github.com/mrz1836/coinaddr/internal/output"
)

// setupTestEnv installs test globals rooted in a temp directory and restores
// the originals on cleanup.
func setupTestEnv(t *testing.T) string {
	t.Helper()

	origCfg := cfg
	origLogger := logger
	origFormatter := formatter
	origSvc := svc

	tmpDir := t.TempDir()

	testCfg := config.Defaults()
	testCfg.Home = tmpDir
	testCfg.Logging.Level = "off"
	cfg = testCfg

	logger = config.NullLogger()
	formatter = output.NewFormatter(output.FormatText)
	svc = newService(cfg, logger)

	t.Cleanup(func() {
		cfg = origCfg
		logger = origLogger
		formatter = origFormatter
		svc = origSvc
	})

	return tmpDir
}

// useJSON switches the global formatter to JSON for the rest of the test.
func useJSON(t *testing.T) {
	t.Helper()
	formatter = output.NewFormatter(output.FormatJSON)
}

// newTestCmd creates a cobra.Command with output capture.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return cmd, &buf
}
