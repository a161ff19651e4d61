package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// BuildInfo describes the running binary. Values are injected at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

//nolint:gochecknoglobals // Build information is set once from main
var buildInfo BuildInfo

// SetBuildInfo records the build information reported by the version command.
func SetBuildInfo(info BuildInfo) {
	buildInfo = info
}

// formatVersion renders build info, filling in placeholders for missing fields.
func formatVersion(info BuildInfo) string {
	return fmt.Sprintf("%s (commit: %s, built: %s)",
		formatVersionField(info.Version, "dev"),
		formatVersionField(info.Commit, "unknown"),
		formatVersionField(info.Date, "unknown"),
	)
}

// versionCmd prints build information.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		if formatter != nil && formatter.IsJSON() {
			return writeJSON(w, map[string]string{
				"version":    formatVersionField(buildInfo.Version, "dev"),
				"commit":     formatVersionField(buildInfo.Commit, "unknown"),
				"date":       formatVersionField(buildInfo.Date, "unknown"),
				"go_version": runtime.Version(),
				"platform":   runtime.GOOS + "/" + runtime.GOARCH,
			})
		}
		out(w, "coinaddr %s\n", formatVersion(buildInfo))
		return nil
	},
}

func formatVersionField(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(versionCmd)
}
