package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dogeorg/dogewifi/pkg/system/shell"
	"github.com/dogeorg/dogewifi/pkg/wireless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScanCommand(t *testing.T) {
	in := strings.NewReader(
		"                            SSID BSSID             RSSI CHANNEL HT CC SECURITY (auth/unicast/group)\n" +
			"                     My Home Net 00:11:22:33:44:55 -60  11      Y  US WPA2(PSK/AES/AES)\n")
	out := &bytes.Buffer{}

	parseScanCmd.SetIn(in)
	parseScanCmd.SetOut(out)
	require.NoError(t, parseScanCmd.RunE(parseScanCmd, nil))

	assert.Contains(t, out.String(), "My Home Net")
	assert.Contains(t, out.String(), "00:11:22:33:44:55")
}

func TestParseScanCommandIWList(t *testing.T) {
	in := strings.NewReader("Cell 01 - Address: 00:11:22:33:44:55\n  ESSID:\"home\"\n  Encryption key:off\n")
	out := &bytes.Buffer{}

	scanFormat = "iwlist"
	defer func() { scanFormat = "airport" }()
	parseScanCmd.SetIn(in)
	parseScanCmd.SetOut(out)
	require.NoError(t, parseScanCmd.RunE(parseScanCmd, nil))

	assert.Contains(t, out.String(), "home")
	assert.Contains(t, out.String(), "NONE")

	scanFormat = "netsh"
	assert.Error(t, parseScanCmd.RunE(parseScanCmd, nil))
}

func TestParseScanCommandEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	parseScanCmd.SetIn(strings.NewReader(""))
	parseScanCmd.SetOut(out)

	require.NoError(t, parseScanCmd.RunE(parseScanCmd, nil))
	assert.Empty(t, out.String())
}

func TestReadPassword(t *testing.T) {
	p, err := readPassword(strings.NewReader("s3cret pass\r\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "s3cret pass", p)

	p, err = readPassword(strings.NewReader("no newline"))
	require.NoError(t, err)
	assert.Equal(t, "no newline", p)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"connect", "current", "interfaces", "interface", "power", "driver", "doctor", "parse-scan", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestPowerArgs(t *testing.T) {
	assert.NoError(t, powerCmd.Args(powerCmd, []string{"on"}))
	assert.NoError(t, powerCmd.Args(powerCmd, nil))
	assert.Error(t, powerCmd.Args(powerCmd, []string{"maybe"}))
	assert.Error(t, powerCmd.Args(powerCmd, []string{"on", "off"}))
}

func useNetworksetup(t *testing.T, m *shell.MockRunner) {
	t.Helper()
	configPath, driverKind, iface = "", "networksetup", "en0"
	wirelessOptions = []wireless.Option{wireless.WithRunner(m)}
	t.Cleanup(func() {
		configPath, driverKind, iface = defaultConfigPath(), "", ""
		wirelessOptions = nil
	})
}

func TestConnectCommand(t *testing.T) {
	m := &shell.MockRunner{}
	m.Expect("networksetup -setairportnetwork en0 home pw", "")
	useNetworksetup(t, m)

	out := &bytes.Buffer{}
	connectCmd.SetOut(out)
	require.NoError(t, connectCmd.RunE(connectCmd, []string{"home", "pw"}))
	assert.Equal(t, "Connected to home on en0\n", out.String())
}

func TestConnectCommandFailureReturnsError(t *testing.T) {
	m := &shell.MockRunner{}
	m.Expect("networksetup -setairportnetwork en0 home bad", "Failed to join network home.\n")
	useNetworksetup(t, m)

	out := &bytes.Buffer{}
	connectCmd.SetOut(out)
	err := connectCmd.RunE(connectCmd, []string{"home", "bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to home on en0")
	assert.Empty(t, out.String())
}
