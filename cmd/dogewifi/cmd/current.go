package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the network the interface is associated with",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := newWireless(cmd)
		if err != nil {
			return err
		}

		ssid, ok := w.Current()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "none")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), ssid)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
