package parse

import (
	"regexp"
	"strings"
)

// fixedColumns is how many leading tokens of a scan row are taken
// as-is. Everything after them is security information.
const fixedColumns = 6

var bssidRE = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$`)

// ParsedScanRow maps a column header to the value in one row.
type ParsedScanRow map[string]string

// SplitRow splits one line of a scan table. The first six tokens
// are columns of their own, the rest are joined with single spaces
// into a trailing seventh column. A row of six tokens or fewer has
// no seventh column at all, not an empty one; ScanTable fills any
// missing column with "".
func SplitRow(line string) []string {
	fields := strings.Fields(line)
	if len(fields) <= fixedColumns {
		return fields
	}
	out := make([]string, 0, fixedColumns+1)
	out = append(out, fields[:fixedColumns]...)
	return append(out, strings.Join(fields[fixedColumns:], " "))
}

// IsBSSID reports whether token looks like a MAC address.
func IsBSSID(token string) bool {
	return bssidRE.MatchString(token)
}

// RepairSSID re-reads a row around its BSSID. Every token before
// the first MAC address is the SSID, which may contain spaces;
// rest starts at the BSSID.
func RepairSSID(line string) (ssid string, rest []string, ok bool) {
	fields := strings.Fields(line)
	for i, f := range fields {
		if IsBSSID(f) {
			return strings.Join(fields[:i], " "), fields[i:], true
		}
	}
	return "", nil, false
}

// ScanTable parses a whole scan response whose first non-blank
// line is the header (airport -s style). Rows whose SSID holds
// spaces are realigned on their BSSID.
func ScanTable(response string) []ParsedScanRow {
	var header []string
	rows := []ParsedScanRow{}

	for _, line := range Lines(response) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if header == nil {
			header = SplitRow(line)
			continue
		}
		rows = append(rows, parseRow(header, line))
	}

	return rows
}

// ScanHeader returns the split header of a scan response, the
// column names ScanTable keys its rows by.
func ScanHeader(response string) []string {
	for _, line := range Lines(response) {
		if strings.TrimSpace(line) != "" {
			return SplitRow(line)
		}
	}
	return nil
}

func parseRow(header []string, line string) ParsedScanRow {
	cols := SplitRow(line)

	if ssid, rest, ok := RepairSSID(line); ok {
		// rebuild as [ssid, bssid, ...] and re-split the tail so the
		// security column picks up whatever is left over
		cols = append([]string{ssid}, SplitRow(strings.Join(rest, " "))...)
		if len(cols) > fixedColumns+1 {
			tail := strings.Join(cols[fixedColumns:], " ")
			cols = append(cols[:fixedColumns], tail)
		}
	}

	row := ParsedScanRow{}
	for i, name := range header {
		if i < len(cols) {
			row[name] = cols[i]
		} else {
			row[name] = ""
		}
	}
	return row
}
