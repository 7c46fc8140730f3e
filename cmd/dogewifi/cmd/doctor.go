package cmd

import (
	"fmt"

	"github.com/dogeorg/dogewifi/pkg/system/nl80211"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Compare what the driver parsed with what the kernel reports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := newWireless(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		current, ok := w.Current()
		if !ok {
			current = "none"
		}
		fmt.Fprintf(out, "Driver:    %s\n", w.Kind())
		fmt.Fprintf(out, "Interface: %s\n", w.Interface())
		fmt.Fprintf(out, "Network:   %s\n\n", current)

		kernel, err := nl80211.Interfaces()
		if err != nil {
			fmt.Fprintf(out, "nl80211 unavailable: %v\n", err)
			return nil
		}

		seen := map[string]bool{}
		for _, name := range w.Interfaces() {
			seen[name] = true
		}

		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.AppendHeader(table.Row{"Interface", "MAC", "SSID", "BSSID", "Driver sees it"})
		for _, ki := range kernel {
			t.AppendRow(table.Row{ki.Name, ki.HardwareAddr, ki.SSID, ki.BSSID, seen[ki.Name]})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
