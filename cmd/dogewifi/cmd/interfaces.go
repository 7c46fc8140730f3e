package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List wireless interfaces as reported by the driver",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := newWireless(cmd)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"#", "Interface", "Bound"})
		for i, name := range w.Interfaces() {
			bound := ""
			if name == w.Interface() {
				bound = "*"
			}
			t.AppendRow(table.Row{i, name, bound})
		}
		t.Render()
		return nil
	},
}

var interfaceCmd = &cobra.Command{
	Use:   "interface [NAME]",
	Short: "Print the bound interface, or bind NAME and show its network",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := newWireless(cmd)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			w.SetInterface(args[0])
		}

		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), w.Interface())
			return nil
		}

		ssid, ok := w.Current()
		if !ok {
			ssid = "none"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", w.Interface(), ssid)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
	rootCmd.AddCommand(interfaceCmd)
}
