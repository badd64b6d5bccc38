package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sas-labs/cmsgen/internal/branding"
	"github.com/sas-labs/cmsgen/internal/config"
	"github.com/sas-labs/cmsgen/internal/registry"
	"github.com/sas-labs/cmsgen/internal/scaffold"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func init() {
	rootCmd.AddCommand(elementCmd)
}

var elementCmd = &cobra.Command{
	Use:     "element <elementName> <pluginName>",
	Aliases: []string{"generate-cms:element"},
	Short:   "Generate CMS element structure",
	Long: `Generate the administration and storefront files of a CMS element inside a plugin.

The element name is used as given for file names and as the template name;
its snake_case form names the twig blocks and its camelCase form the snippet label.
Existing files are overwritten.

Example:
  ` + branding.CLIName() + ` element fancy-box ExamplePlugin`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		elementName, pluginName := args[0], args[1]

		settings := config.Current()
		log := newLogger(settings)

		plugins, err := openRegistry(settings, log)
		if err != nil {
			return err
		}

		s := scaffold.New(targetFS, stubSet(settings), plugins, scaffold.WithLogger(log))
		result, err := s.Generate(elementName, pluginName)
		if err != nil {
			var nf *registry.NotFoundError
			if errors.As(err, &nf) {
				return fmt.Errorf("%w (run '%s plugins' to list known plugins)", err, branding.CLIName())
			}
			return err
		}

		printResult(cmd.OutOrStdout(), result)
		return nil
	},
}

func printResult(w io.Writer, result *scaffold.Result) {
	if verbose {
		printer.Fprintf(w, "Wrote %d files under %s/\n", len(result.Files), result.PluginRoot)
		for _, f := range result.Files {
			rel, err := filepath.Rel(result.PluginRoot, f)
			if err != nil {
				rel = f
			}
			fmt.Fprintf(w, "  %s\n", rel)
		}
	}
	fmt.Fprintf(w, "CMS Element: %s scaffolding installed successfully\n", result.Element)
}
