package cli

import (
	"github.com/retroenv/ihexconv/internal/config"
	"github.com/retroenv/ihexconv/internal/converter"
	"github.com/spf13/cobra"
)

// bin2hexCmd represents the bin2hex command
var bin2hexCmd = &cobra.Command{
	Use:   "bin2hex <input> <output>",
	Short: "Convert a flat binary image to an Intel HEX file",
	Long: `Convert a flat binary image to an Intel HEX file.

The input is emitted as data records of up to 16 bytes, preceded by
extended linear address records on 64KiB boundary crossings and
terminated by an end of file record.

Example:
  ihexconv bin2hex --start 0x8000000 firmware.bin firmware.hex`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		conv := converter.New(logger, opts.Filler)
		return conv.BinToHex(cmd.Context(), args[0], args[1], opts.Start)
	},
}

func init() {
	bin2hexCmd.Flags().Uint32Var(&opts.Start, "start", 0,
		"start address of the first data byte")
	rootCmd.AddCommand(bin2hexCmd)
}
