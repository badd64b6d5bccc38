package cli

import (
	"fmt"
	"os"

	"github.com/sas-labs/cmsgen/internal/branding"
	"github.com/sas-labs/cmsgen/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds CMS element boilerplate (administration components and
storefront templates) into the plugins of a shop installation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load(cfgFile)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default ~/"+branding.HomeDir()+"/config.yaml)")
	pf.String("project-dir", "", "Shop project directory (default .)")
	pf.String("plugins-dir", "", "Plugin directory relative to the project (default "+config.DefaultPluginsDir+")")
	pf.String("registry", "", "YAML plugin registry file; disables plugin discovery")
	pf.String("stubs-dir", "", "Directory replacing the bundled stubs")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Debug logging and per-file output")

	bindFlag(config.KeyProjectDir, "project-dir")
	bindFlag(config.KeyPluginsDir, "plugins-dir")
	bindFlag(config.KeyRegistryFile, "registry")
	bindFlag(config.KeyStubsDir, "stubs-dir")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
