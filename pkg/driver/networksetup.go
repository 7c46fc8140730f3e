package driver

import (
	"strings"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/dogeorg/dogewifi/pkg/parse"
	"github.com/dogeorg/dogewifi/pkg/system/shell"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.Driver = &Networksetup{}

// Networksetup drives the macOS networksetup tool.
type Networksetup struct {
	base
}

func NewNetworksetup(runner dogewifi.Runner, log logrus.FieldLogger) *Networksetup {
	return &Networksetup{base{runner: runner, log: log}}
}

func (d *Networksetup) Kind() dogewifi.Kind {
	return dogewifi.KindNetworksetup
}

// networksetup says nothing on success.
func (d *Networksetup) Connect(ssid string, password string) bool {
	response := d.runSecret(password, "networksetup -setairportnetwork %s %s %s",
		shell.Quote(d.iface), shell.Quote(ssid), shell.Quote(password))

	if strings.TrimSpace(response) != "" {
		d.log.WithField("ssid", ssid).WithField("response", strings.TrimSpace(response)).Warn("failed to connect")
		return false
	}

	d.log.WithField("ssid", ssid).Info("connected")
	return true
}

func (d *Networksetup) Current() (string, bool) {
	response := d.run("networksetup -getairportnetwork %s", shell.Quote(d.iface))

	ssid, ok := parse.ValueAfter(response, "Current Wi-Fi Network:")
	if !ok || ssid == "" {
		return "", false
	}
	return ssid, true
}

// Interfaces reads the hardware port list:
//
//	Hardware Port: Wi-Fi
//	Device: en0
//	Ethernet Address: ...
func (d *Networksetup) Interfaces() []string {
	response := d.run("networksetup -listallhardwareports")

	interfaces := []string{}
	detectedWifi := false
	for _, line := range parse.Lines(response) {
		if detectedWifi {
			detectedWifi = false
			if name, ok := parse.ValueAfter(line, "Device: "); ok && name != "" {
				interfaces = append(interfaces, name)
			}
			continue
		}
		if strings.Contains(line, "Wi-Fi") {
			detectedWifi = true
		}
	}
	return interfaces
}

func (d *Networksetup) Power() (bool, bool) {
	response := d.run("networksetup -getairportpower %s", shell.Quote(d.iface))
	return strings.Contains(response, "On"), true
}

func (d *Networksetup) SetPower(on bool) {
	state := "off"
	if on {
		state = "on"
	}
	d.run("networksetup -setairportpower %s %s", shell.Quote(d.iface), state)
}
