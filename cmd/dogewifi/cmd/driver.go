package cmd

import (
	"fmt"

	"github.com/dogeorg/dogewifi/pkg/driver"
	"github.com/dogeorg/dogewifi/pkg/system/shell"
	"github.com/spf13/cobra"
)

var driverCmd = &cobra.Command{
	Use:   "driver",
	Short: "Print which driver this host would use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Kind != "" {
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Kind)
			return nil
		}

		kind, err := driver.Detect(shell.NewShellRunner(log), log)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), kind)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(driverCmd)
}
