package parse

import (
	"regexp"
	"strings"
)

var (
	iwlistSSIDRE       = regexp.MustCompile(`ESSID:"(.*?)"`)
	iwlistAddressRE    = regexp.MustCompile(`Address: ([0-9A-Fa-f:]+)`)
	iwlistEncryptionRE = regexp.MustCompile(`Encryption key:(on|off)`)
	iwlistWPA2RE       = regexp.MustCompile(`IE: IEEE 802.11i/WPA2 Version`)
	iwlistWPARE        = regexp.MustCompile(`IE: WPA Version 1`)
)

// IWListCells turns `iwlist <iface> scan` output into rows keyed
// like ScanTable's: SSID, BSSID and SECURITY. Cells missing any of
// the three markers are dropped.
func IWListCells(response string) []ParsedScanRow {
	rows := []ParsedScanRow{}

	for _, cell := range strings.Split(response, "Cell ") {
		ssid := iwlistSSIDRE.FindStringSubmatch(cell)
		address := iwlistAddressRE.FindStringSubmatch(cell)
		encryption := iwlistEncryptionRE.FindStringSubmatch(cell)

		if len(ssid) < 2 || len(address) < 2 || len(encryption) < 2 {
			continue
		}

		security := "NONE"
		if encryption[1] == "on" {
			switch {
			case iwlistWPA2RE.MatchString(cell):
				security = "WPA2"
			case iwlistWPARE.MatchString(cell):
				security = "WPA"
			default:
				security = "WEP"
			}
		}

		rows = append(rows, ParsedScanRow{
			"SSID":     ssid[1],
			"BSSID":    address[1],
			"SECURITY": security,
		})
	}

	return rows
}
