package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/sas-labs/cmsgen/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build info as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
	rootCmd.AddCommand(versionCmd)
}

// buildInfo is what ldflags stamped into the binary.
type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Release bool   `json:"release"`
}

func currentBuild() buildInfo {
	_, err := semver.StrictNewVersion(buildVersion)
	return buildInfo{
		Version: buildVersion,
		Commit:  buildCommit,
		Date:    buildDate,
		Release: err == nil,
	}
}

func (b buildInfo) String() string {
	s := fmt.Sprintf("%s %s (commit %s, built %s)", branding.CLIName(), b.Version, b.Commit, b.Date)
	if !b.Release {
		s += " [development build]"
	}
	return s
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		b := currentBuild()

		switch {
		case versionShort:
			_, err := fmt.Fprintln(out, b.Version)
			return err
		case versionJSON:
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(b); err != nil {
				return fmt.Errorf("encoding build info: %w", err)
			}
			return nil
		default:
			_, err := fmt.Fprintln(out, b)
			return err
		}
	},
}
