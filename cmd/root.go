package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "ceapwatch",
	Short: "Terminal dashboard for CEAP expense-risk indicators",
	Long: `ceapwatch - Terminal dashboard for the Brazilian parliamentary quota (CEAP)
expense-risk dataset: supplier concentration (HHI), Benford's Law deviations,
z-score outliers and CNPJ activity mismatches.

The analysis itself runs in a separate pipeline; ceapwatch explores its
outputs: the field glossary, entity relationships, dataset descriptors and
the gated subscriber section.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.AddGroup(
		&cobra.Group{ID: "explore", Title: "Explore Commands:"},
		&cobra.Group{ID: "subscriber", Title: "Subscriber Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)

	rootCmd.SetHelpCommandGroupID("system")
	rootCmd.SetCompletionCommandGroupID("system")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory for local config lookup
func getBaseDir() string {
	return baseDir
}

// addJSONFlag registers the shared --json output flag on a flag set.
func addJSONFlag(fs *pflag.FlagSet) {
	fs.Bool("json", false, "Output as JSON")
}
