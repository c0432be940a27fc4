package cli

import (
	"github.com/retroenv/ihexconv/internal/config"
	"github.com/retroenv/ihexconv/internal/converter"
	"github.com/spf13/cobra"
)

// hex2binCmd represents the hex2bin command
var hex2binCmd = &cobra.Command{
	Use:   "hex2bin <input> <output>",
	Short: "Convert an Intel HEX file to a flat binary image",
	Long: `Convert an Intel HEX file to a flat binary image.

The output covers the range from the lowest to the highest written
address, gaps inside the range are filled with the filler byte.

Example:
  ihexconv hex2bin firmware.hex firmware.bin`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		conv := converter.New(logger, opts.Filler)
		return conv.HexToBin(cmd.Context(), args[0], args[1])
	},
}

func init() {
	hex2binCmd.Flags().Uint8Var(&opts.Filler, "fill", opts.Filler,
		"filler byte for gaps inside the written address range")
	rootCmd.AddCommand(hex2binCmd)
}
