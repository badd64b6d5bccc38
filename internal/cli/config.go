package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/sas-labs/cmsgen/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	configCmd.AddCommand(configSetCmd, configGetCmd, configListCmd)
	rootCmd.AddCommand(configCmd)
}

// knownKey rejects a first argument that is not a settings key.
func knownKey(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && !config.IsKnownKey(args[0]) {
		return fmt.Errorf("unknown config key %q (known: %v)", args[0], config.Keys)
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
	Long: `Settings are read from ` + config.FilePath() + `, then from
environment variables, then from command-line flags, the later ones winning.`,
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Persist a setting in the config file",
	Args:      cobra.MatchAll(cobra.ExactArgs(2), knownKey),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (saved to %s)\n", args[0], args[1], viper.ConfigFileUsed())
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Print the resolved value of a setting",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), knownKey),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every setting and its resolved value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, key := range config.Keys {
			fmt.Fprintf(tw, "%s\t%s\n", key, config.Get(key))
		}
		return tw.Flush()
	},
}
