package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var passwordStdin bool

var connectCmd = &cobra.Command{
	Use:   "connect SSID [PASSWORD]",
	Short: "Connect to a wireless network",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ssid := args[0]
		password := ""
		if len(args) == 2 {
			password = args[1]
		}
		if passwordStdin {
			p, err := readPassword(cmd.InOrStdin())
			if err != nil {
				return err
			}
			password = p
		}

		w, err := newWireless(cmd)
		if err != nil {
			return err
		}

		if !w.Connect(ssid, password) {
			return fmt.Errorf("failed to connect to %s on %s", ssid, w.Interface())
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Connected to %s on %s\n", ssid, w.Interface())
		return nil
	},
}

func init() {
	connectCmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	rootCmd.AddCommand(connectCmd)
}

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
