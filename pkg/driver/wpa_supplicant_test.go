package driver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/dogeorg/dogewifi/pkg/system/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKiller struct {
	killed []string
}

func (k *fakeKiller) KillAll(name string) {
	k.killed = append(k.killed, name)
}

func newTestSupplicant(t *testing.T, m *shell.MockRunner) (*WPASupplicant, *fakeKiller, *[]time.Duration) {
	t.Helper()

	killer := &fakeKiller{}
	slept := []time.Duration{}
	cfg := dogewifi.DefaultConfig()
	cfg.ScratchFile = filepath.Join(t.TempDir(), "wpa_supplicant.conf")

	d := NewWPASupplicant(m, newTestLogger(), Options{
		Config: cfg,
		Killer: killer,
		Sleep:  func(d time.Duration) { slept = append(slept, d) },
	})
	d.SetInterface("wlan0")
	return d, killer, &slept
}

func TestWPASupplicantCurrent(t *testing.T) {
	m := &shell.MockRunner{}
	m.Expect("iwconfig wlan0",
		"wlan0 IEEE 802.11 ESSID:\"MyNet\"\n          Mode:Managed  Frequency:2.437 GHz\n",
		"wlan0     IEEE 802.11  ESSID:off/any\n",
		"wlan0     IEEE 802.11  ESSID:\"off/any\"\n",
		"")
	d, _, _ := newTestSupplicant(t, m)

	ssid, ok := d.Current()
	assert.True(t, ok)
	assert.Equal(t, "MyNet", ssid)

	for i := 0; i < 3; i++ {
		_, ok = d.Current()
		assert.False(t, ok)
	}
}

func TestWPASupplicantConnect(t *testing.T) {
	m := &shell.MockRunner{}
	m.Expect("iwconfig wlan0", "wlan0     IEEE 802.11  ESSID:\"My Net\"\n")
	d, killer, slept := newTestSupplicant(t, m)

	assert.True(t, d.Connect("My Net", "pass\"word"))

	assert.Equal(t, []string{"wpa_supplicant"}, killer.killed)
	assert.Equal(t, []time.Duration{dogewifi.DefaultSettleDelay}, *slept)
	assert.Equal(t, []string{
		"ifconfig wlan0 10.5.5.10/24 up",
		"wpa_supplicant -iwlan0 -c" + shell.Quote(d.scratchFile) + " -B",
		"iwconfig wlan0",
	}, m.Calls)

	conf, err := os.ReadFile(d.scratchFile)
	require.NoError(t, err)
	assert.Equal(t, "network={\n    ssid=\"My Net\"\n    psk=\"pass\"word\"\n}\n", string(conf))

	info, err := os.Stat(d.scratchFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSupplicantConfigIsVerbatim(t *testing.T) {
	assert.Equal(t, "network={\n    ssid=\"a\\b\"\n    psk=\"p w\"\n}\n", supplicantConfig(`a\b`, "p w"))
}

func TestWPASupplicantConnectWrongNetwork(t *testing.T) {
	m := &shell.MockRunner{}
	m.Expect("iwconfig wlan0", "wlan0     IEEE 802.11  ESSID:\"Other\"\n")
	d, _, _ := newTestSupplicant(t, m)

	assert.False(t, d.Connect("MyNet", "pw"))
}

func TestWPASupplicantConnectWriteFailure(t *testing.T) {
	m := &shell.MockRunner{}
	d, _, slept := newTestSupplicant(t, m)
	d.scratchFile = filepath.Join(t.TempDir(), "missing", "dir", "wpa.conf")

	assert.False(t, d.Connect("MyNet", "pw"))
	assert.Empty(t, *slept)
	assert.Empty(t, m.CalledWithPrefix("wpa_supplicant"))
}

func TestWPASupplicantInterfaces(t *testing.T) {
	m := &shell.MockRunner{}
	m.Expect("iwconfig",
		"lo        no wireless extensions.\n\n"+
			"eth0      no wireless extensions.\n\n"+
			"wlan0     IEEE 802.11bgn  ESSID:off/any\n"+
			"          Mode:Managed  Access Point: Not-Associated\n"+
			"\twlan9 is not an interface\n\n"+
			"wlan1     IEEE 802.11AC  ESSID:\"home\"\n",
		"lo        no wireless extensions.\n\n")
	d, _, _ := newTestSupplicant(t, m)

	assert.Equal(t, []string{"wlan0", "wlan1"}, d.Interfaces())
	assert.Equal(t, []string{}, d.Interfaces())
}

func TestWPASupplicantPowerUnsupported(t *testing.T) {
	m := &shell.MockRunner{}
	d, _, _ := newTestSupplicant(t, m)

	_, known := d.Power()
	assert.False(t, known)

	d.SetPower(true)
	assert.Empty(t, m.Calls)
}
