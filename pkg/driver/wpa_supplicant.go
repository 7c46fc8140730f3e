package driver

import (
	"fmt"
	"os"
	"strings"
	"time"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/dogeorg/dogewifi/pkg/parse"
	"github.com/dogeorg/dogewifi/pkg/system/shell"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.Driver = &WPASupplicant{}

const networkBlock = `network={
    ssid="%s"
    psk="%s"
}
`

// WPASupplicant drives wpa_supplicant directly and reads state back
// with iwconfig. It is the fallback for hosts without NetworkManager.
type WPASupplicant struct {
	base

	scratchFile   string
	staticAddress string
	settleDelay   time.Duration

	killer    ProcessKiller
	sleep     func(time.Duration)
	writeFile func(name string, data []byte, perm os.FileMode) error
}

func NewWPASupplicant(runner dogewifi.Runner, log logrus.FieldLogger, opts Options) *WPASupplicant {
	opts = opts.withDefaults()
	if opts.Killer == nil {
		opts.Killer = NewProcessKiller(runner, log)
	}

	return &WPASupplicant{
		base:          base{runner: runner, log: log},
		scratchFile:   opts.Config.ScratchFile,
		staticAddress: opts.Config.StaticAddress,
		settleDelay:   opts.Config.SettleDelay,
		killer:        opts.Killer,
		sleep:         opts.Sleep,
		writeFile:     opts.WriteFile,
	}
}

func (d *WPASupplicant) Kind() dogewifi.Kind {
	return dogewifi.KindWPASupplicant
}

// Connect restarts wpa_supplicant against a fresh one-network
// config and then checks, after a fixed wait, whether the
// interface reports the requested ssid.
func (d *WPASupplicant) Connect(ssid string, password string) bool {
	d.killer.KillAll("wpa_supplicant")

	// static address, dhcp causes dropouts on some access points
	d.run("ifconfig %s %s up", shell.Quote(d.iface), shell.Quote(d.staticAddress))

	if err := d.writeFile(d.scratchFile, []byte(supplicantConfig(ssid, password)), 0600); err != nil {
		d.log.WithError(err).WithField("file", d.scratchFile).Error("failed to write wpa_supplicant config")
		return false
	}

	d.run("wpa_supplicant -i%s -c%s -B", shell.Quote(d.iface), shell.Quote(d.scratchFile))

	d.log.WithField("ssid", ssid).WithField("delay", d.settleDelay).Debug("waiting for association")
	d.sleep(d.settleDelay)

	current, ok := d.Current()
	if !ok || current != ssid {
		d.log.WithField("ssid", ssid).WithField("current", current).Warn("failed to connect")
		return false
	}

	d.log.WithField("ssid", ssid).Info("connected")
	return true
}

// supplicantConfig writes values as-is: an ssid or passphrase holding
// a double quote or newline yields a broken network block.
func supplicantConfig(ssid string, password string) string {
	return fmt.Sprintf(networkBlock, ssid, password)
}

// Current reads the first line of iwconfig, eg.
// wlan0     IEEE 802.11AC  ESSID:"SSID"  Nickname:"<WIFI@REALTEK>"
func (d *WPASupplicant) Current() (string, bool) {
	response := d.run("iwconfig %s", shell.Quote(d.iface))

	ssid, ok := parse.QuotedAfter(parse.FirstLine(response), "ESSID:")
	if !ok || ssid == "off/any" {
		return "", false
	}
	return ssid, true
}

func (d *WPASupplicant) Interfaces() []string {
	response := d.run("iwconfig")

	interfaces := []string{}
	for _, line := range parse.Lines(response) {
		if line == "" || strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			continue
		}
		if strings.Contains(line, "no wireless extensions") {
			continue
		}
		if name, ok := parse.FirstField(line); ok {
			interfaces = append(interfaces, name)
		}
	}
	return interfaces
}

func (d *WPASupplicant) Power() (bool, bool) {
	d.log.Warn("wpa_supplicant does not support power")
	return false, false
}

func (d *WPASupplicant) SetPower(on bool) {
	d.log.WithField("on", on).Warn("wpa_supplicant does not support power")
}
