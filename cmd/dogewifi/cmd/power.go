package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var powerCmd = &cobra.Command{
	Use:       "power [on|off]",
	Short:     "Get or set the radio power",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := newWireless(cmd)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			w.SetPower(args[0] == "on")
			return nil
		}

		on, known := w.Power()
		switch {
		case !known:
			fmt.Fprintf(cmd.OutOrStdout(), "unknown (%s cannot report power)\n", w.Kind())
		case on:
			fmt.Fprintln(cmd.OutOrStdout(), "on")
		default:
			fmt.Fprintln(cmd.OutOrStdout(), "off")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(powerCmd)
}
