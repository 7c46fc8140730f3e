package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dogeorg/dogewifi/pkg/parse"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var scanFormat string

var parseScanCmd = &cobra.Command{
	Use:   "parse-scan [FILE]",
	Short: "Parse airport -s or iwlist scan output (from FILE or stdin) into a table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		raw, err := io.ReadAll(in)
		if err != nil {
			return err
		}

		var header []string
		var rows []parse.ParsedScanRow
		switch scanFormat {
		case "airport":
			header = parse.ScanHeader(string(raw))
			rows = parse.ScanTable(string(raw))
		case "iwlist":
			header = []string{"SSID", "BSSID", "SECURITY"}
			rows = parse.IWListCells(string(raw))
		default:
			return fmt.Errorf("unknown scan format %q", scanFormat)
		}
		if len(header) == 0 || len(rows) == 0 {
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		headerRow := table.Row{}
		for _, h := range header {
			headerRow = append(headerRow, h)
		}
		t.AppendHeader(headerRow)
		for _, r := range rows {
			row := table.Row{}
			for _, h := range header {
				row = append(row, r[h])
			}
			t.AppendRow(row)
		}
		t.Render()
		return nil
	},
}

func init() {
	parseScanCmd.Flags().StringVar(&scanFormat, "format", "airport", "Scan output format: airport or iwlist")
	rootCmd.AddCommand(parseScanCmd)
}
