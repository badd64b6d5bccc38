package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/sas-labs/cmsgen/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pluginsCmd)
}

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List the plugins elements can be generated into",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Current()
		plugins, err := openRegistry(settings, newLogger(settings))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if plugins.Len() == 0 {
			fmt.Fprintln(out, "No plugins found.")
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tVERSION\tROOT")
		for _, e := range plugins.Entries() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.VersionString(), e.Root())
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		printer.Fprintf(out, "\n%d plugins\n", plugins.Len())
		return nil
	},
}
