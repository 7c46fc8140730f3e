package driver

import (
	"strings"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/dogeorg/dogewifi/pkg/parse"
	"github.com/dogeorg/dogewifi/pkg/system/shell"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	_ dogewifi.Driver = &NmcliLegacy{}
	_ dogewifi.Driver = &NmcliModern{}
)

// nmcliCommands is the part of the nmcli command line that moved
// between releases. Everything else is shared by both dialects.
type nmcliCommands struct {
	listConnections string // + " | grep <ssid>"
	activeOn        string // + " | grep <iface>"
	connect         string // ssid, password, iface
	deviceType      string // TYPE column value for wifi devices
	radio           string // + " on" / " off"
}

var legacyCommands = nmcliCommands{
	listConnections: "nmcli --fields UUID,NAME con list",
	activeOn:        "nmcli --fields NAME,DEVICES con status",
	connect:         "nmcli dev wifi connect %s password %s iface %s",
	deviceType:      "wireless",
	radio:           "nmcli nm wifi",
}

var modernCommands = nmcliCommands{
	listConnections: "nmcli --fields UUID,NAME con show",
	activeOn:        "nmcli --fields NAME,DEVICE con show --active",
	connect:         "nmcli dev wifi connect %s password %s ifname %s",
	deviceType:      "wifi",
	radio:           "nmcli r wifi",
}

// NmcliLegacy speaks nmcli 0.9.9.0 and older.
type NmcliLegacy struct {
	nmcli
}

func NewNmcliLegacy(runner dogewifi.Runner, log logrus.FieldLogger) *NmcliLegacy {
	return &NmcliLegacy{nmcli{base: base{runner: runner, log: log}, cmds: legacyCommands}}
}

func (d *NmcliLegacy) Kind() dogewifi.Kind {
	return dogewifi.KindNmcliLegacy
}

// NmcliModern speaks nmcli releases after 0.9.9.0.
type NmcliModern struct {
	nmcli
}

func NewNmcliModern(runner dogewifi.Runner, log logrus.FieldLogger) *NmcliModern {
	return &NmcliModern{nmcli{base: base{runner: runner, log: log}, cmds: modernCommands}}
}

func (d *NmcliModern) Kind() dogewifi.Kind {
	return dogewifi.KindNmcliModern
}

type nmcli struct {
	base
	cmds nmcliCommands
}

// clean deletes every connection profile whose name contains partial.
// NetworkManager keeps a new profile per connect and eventually fails
// with "maximum number of pending replies per connection has been
// reached" if they are never pruned.
func (n *nmcli) clean(partial string) {
	response := n.run("%s | grep -F -e %s", n.cmds.listConnections, shell.Quote(partial))

	for _, line := range parse.Lines(response) {
		field, ok := parse.FirstField(line)
		if !ok {
			continue
		}
		id, err := uuid.Parse(field)
		if err != nil {
			n.log.WithField("line", line).Debug("skipping connection without a uuid")
			continue
		}
		n.run("nmcli con delete uuid %s", id.String())
	}
}

// nmcli sometimes prints warnings even though the connection came
// up fine, so only lines starting with "Error" count.
func errorInResponse(response string) bool {
	return parse.HasLinePrefix(response, "Error")
}

func (n *nmcli) Connect(ssid string, password string) bool {
	if current, ok := n.Current(); ok {
		n.clean(current)
	}

	response := n.runSecret(password, n.cmds.connect, shell.Quote(ssid), shell.Quote(password), shell.Quote(n.iface))

	if errorInResponse(response) {
		n.log.WithField("ssid", ssid).WithField("response", strings.TrimSpace(response)).Warn("failed to connect")
		return false
	}

	n.log.WithField("ssid", ssid).Info("connected")
	return true
}

func (n *nmcli) Current() (string, bool) {
	response := n.run("%s | grep -F -e %s", n.cmds.activeOn, shell.Quote(n.iface))

	// grep matches substrings, so wlan0mon rows show up for wlan0
	for _, line := range parse.Lines(response) {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[len(fields)-1] != n.iface {
			continue
		}
		return fields[0], true
	}
	return "", false
}

func (n *nmcli) Interfaces() []string {
	response := n.run("nmcli --fields DEVICE,TYPE dev")
	return parse.FirstFieldsContaining(response, n.cmds.deviceType)
}

func (n *nmcli) Power() (bool, bool) {
	response := n.run("%s", n.cmds.radio)
	return strings.Contains(response, "enabled"), true
}

func (n *nmcli) SetPower(on bool) {
	if on {
		n.run("%s on", n.cmds.radio)
	} else {
		n.run("%s off", n.cmds.radio)
	}
}
