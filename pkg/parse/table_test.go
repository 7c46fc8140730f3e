package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scanHeader = "                            SSID BSSID             RSSI CHANNEL HT CC SECURITY (auth/unicast/group)"

func TestSplitRow(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "header",
			line:     scanHeader,
			expected: []string{"SSID", "BSSID", "RSSI", "CHANNEL", "HT", "CC", "SECURITY (auth/unicast/group)"},
		},
		{
			name:     "security spread over tokens",
			line:     "home 00:11:22:33:44:55 -60 11 Y US WPA2(PSK/AES/AES) WPA(PSK/TKIP/TKIP)",
			expected: []string{"home", "00:11:22:33:44:55", "-60", "11", "Y", "US", "WPA2(PSK/AES/AES) WPA(PSK/TKIP/TKIP)"},
		},
		{
			name:     "short row",
			line:     "a b c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "blank",
			line:     "   ",
			expected: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SplitRow(tc.line))
		})
	}
}

func TestIsBSSID(t *testing.T) {
	assert.True(t, IsBSSID("00:11:22:aa:BB:cc"))
	assert.True(t, IsBSSID("00-11-22-aa-bb-cc"))
	assert.False(t, IsBSSID("00:11:22:aa:bb"))
	assert.False(t, IsBSSID("home"))
}

func TestRepairSSID(t *testing.T) {
	ssid, rest, ok := RepairSSID("My Home Net 00:11:22:33:44:55 -60 11 Y US NONE")
	require.True(t, ok)
	assert.Equal(t, "My Home Net", ssid)
	assert.Equal(t, "00:11:22:33:44:55", rest[0])

	_, _, ok = RepairSSID("no mac in here")
	assert.False(t, ok)
}

func TestScanTableSSIDRoundTrip(t *testing.T) {
	for _, ssid := range []string{"home", "My Home Net"} {
		t.Run(ssid, func(t *testing.T) {
			response := scanHeader + "\n" + ssid + " 00:11:22:33:44:55 -60 11 Y US WPA2(PSK/AES/AES)\n"
			rows := ScanTable(response)
			require.Len(t, rows, 1)

			row := rows[0]
			assert.Equal(t, ssid, row["SSID"])
			assert.Equal(t, "00:11:22:33:44:55", row["BSSID"])
			assert.Equal(t, "-60", row["RSSI"])
			assert.Equal(t, "US", row["CC"])
			assert.Equal(t, "WPA2(PSK/AES/AES)", row["SECURITY (auth/unicast/group)"])
		})
	}
}

func TestScanTableSecurityTail(t *testing.T) {
	response := scanHeader + "\nCafe Guest 00:11:22:33:44:55 -71 6 N -- WPA2(PSK/AES/AES) WPA(PSK/TKIP/TKIP)\n"
	rows := ScanTable(response)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cafe Guest", rows[0]["SSID"])
	assert.Equal(t, "WPA2(PSK/AES/AES) WPA(PSK/TKIP/TKIP)", rows[0]["SECURITY (auth/unicast/group)"])
}

func TestScanTableMalformed(t *testing.T) {
	assert.Empty(t, ScanTable(""))
	assert.Empty(t, ScanTable(scanHeader))

	rows := ScanTable(scanHeader + "\ngarbage\n\n")
	require.Len(t, rows, 1)
	assert.Equal(t, "garbage", rows[0]["SSID"])
	assert.Equal(t, "", rows[0]["BSSID"])
}

func TestScanHeader(t *testing.T) {
	assert.Nil(t, ScanHeader("\n  \n"))
	assert.Equal(t, "SSID", ScanHeader("\n"+scanHeader)[0])
}
