// Package cli handles command line interface logic
package cli

import (
	"context"

	"github.com/retroenv/ihexconv/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/spf13/cobra"
)

var opts = options.New()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ihexconv",
	Short: "Converter between Intel HEX files and flat binary images",
	Long: `ihexconv converts Intel HEX files into flat binary memory images
and binary images back into checksummed, correctly addressed Intel HEX
records.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and returns the first error encountered.
// The caller is responsible for reporting it to the user.
func Execute(ctx context.Context, version, commit, date string) error {
	rootCmd.Version = buildinfo.Version(version, commit, date)
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	rootCmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "perform operations quietly")
}
