package cmd

import (
	"fmt"

	"github.com/dogeorg/dogewifi/pkg/driver"
	"github.com/dogeorg/dogewifi/pkg/system/shell"
	"github.com/dogeorg/dogewifi/pkg/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get dogewifi version information and the driver this host would use",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		log := logrus.New()
		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(logrus.WarnLevel)
		info := version.Get().WithDetected(driver.Detect(shell.NewShellRunner(log), log))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Release: %s\n", info.Release)
		fmt.Fprintf(out, "Git: %s\n", info.Build.Commit)
		fmt.Fprintf(out, "Dirty: %t\n", info.Build.Dirty)
		fmt.Fprintf(out, "OS: %s\n", info.Build.GoOS)
		fmt.Fprintf(out, "Drivers: %v\n", info.Drivers)
		fmt.Fprintf(out, "Detected: %s\n", info.Detected)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
